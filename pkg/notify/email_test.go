package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComposeLikeMail(t *testing.T) {
	at := time.Date(2025, 8, 30, 10, 30, 0, 0, time.Local)
	subject, body := ComposeLikeMail(
		"binjuhor's blog", "A Great Post", "https://binjuhor.com/posts/42",
		3, "Guest (IP: 1.2.3.4)", at,
	)

	assert.Equal(t, "[binjuhor's blog] New Like: A Great Post", subject)
	assert.Equal(
		t,
		"A post has just been liked!\n\n"+
			"Title: A Great Post\n"+
			"URL: https://binjuhor.com/posts/42\n"+
			"Total likes: 3\n"+
			"Guest (IP: 1.2.3.4)\n"+
			"Time: 2025-08-30 10:30:00\n",
		body,
	)
}
