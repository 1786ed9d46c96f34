package model

// Post 文章元数据（内容渲染不在本服务范围内，这里只保留点赞相关字段）
type Post struct {
	ID        int64    `json:"id"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Title     string   `json:"title"`
	Desc      string   `json:"desc"`
	UpdatedAt string   `json:"updateAt"`
}

// Posts 文章列表
type Posts []Post

// PostData 文章数据
type PostData struct {
	Posts Posts `json:"posts"`
}

// GetByID 根据 ID 获取文章
func (ps Posts) GetByID(id int64) *Post {
	for _, post := range ps {
		if post.ID == id {
			return &post
		}
	}
	return nil
}
