package notify

import (
	"fmt"
	"time"
)

// ComposeLikeMail 渲染点赞通知邮件的标题与正文
func ComposeLikeMail(site, title, url string, totalLikes int64, who string, at time.Time) (subject, body string) {
	subject = fmt.Sprintf("[%s] New Like: %s", site, title)
	body = fmt.Sprintf(
		"A post has just been liked!\n\n"+
			"Title: %s\n"+
			"URL: %s\n"+
			"Total likes: %d\n"+
			"%s\n"+
			"Time: %s\n",
		title, url, totalLikes, who, at.Format(time.DateTime),
	)
	return subject, body
}
