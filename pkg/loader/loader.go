package loader

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/model"
)

// PostLoader 文章元数据加载器
type PostLoader struct {
	postData model.PostData
}

// New ...
func New() *PostLoader {
	return &PostLoader{postData: model.PostData{}}
}

func (l *PostLoader) Exec() (*model.PostData, error) {
	for _, f := range []func() error{
		l.loadPostMetadata,
		l.checkPostIDs,
	} {
		if err := f(); err != nil {
			return nil, err
		}
	}
	return &l.postData, nil
}

// 加载文章元数据
func (l *PostLoader) loadPostMetadata() error {
	content, err := os.ReadFile(filepath.Join(envs.PostDataBaseDir, "posts.json"))
	if err != nil {
		return err
	}

	if err = json.Unmarshal(content, &l.postData.Posts); err != nil {
		return err
	}
	return nil
}

// 校验文章 ID（必须为正整数且不重复）
func (l *PostLoader) checkPostIDs() error {
	seen := map[int64]struct{}{}
	for _, post := range l.postData.Posts {
		if post.ID <= 0 {
			return errors.Errorf("invalid post id: %d", post.ID)
		}
		if _, ok := seen[post.ID]; ok {
			return errors.Errorf("duplicate post id: %d", post.ID)
		}
		seen[post.ID] = struct{}{}
	}
	return nil
}
