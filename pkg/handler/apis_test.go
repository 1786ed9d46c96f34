package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/binjuhor/likepost/pkg/identity"
	"github.com/binjuhor/likepost/pkg/model"
	"github.com/binjuhor/likepost/pkg/notify"
	"github.com/binjuhor/likepost/pkg/service"
	"github.com/binjuhor/likepost/pkg/utils/ginx"
)

type memStore struct {
	mu      sync.Mutex
	records []model.LikeRecord
}

func (s *memStore) HasLiked(ctx context.Context, id identity.Identity, postID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.PostID != postID {
			continue
		}
		if id.IsRegistered() && r.UserID == id.UserID {
			return true, nil
		}
		if !id.IsRegistered() && r.UserID == model.AnonymousUserID && r.IPAddress == id.IP {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Count(ctx context.Context, postID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, r := range s.records {
		if r.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (s *memStore) Insert(ctx context.Context, record *model.LikeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	return nil
}

func (s *memStore) TopLiked(ctx context.Context, limit int) ([]model.PostLikes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[int64]int64{}
	for _, r := range s.records {
		counts[r.PostID]++
	}
	var result []model.PostLikes
	for postID, likes := range counts {
		result = append(result, model.PostLikes{PostID: postID, Likes: likes})
	}
	return result, nil
}

type memCatalog map[int64]string

func (c memCatalog) Exists(postID int64) bool {
	_, ok := c[postID]
	return ok
}

func (c memCatalog) TitleAndURL(postID int64) (string, string, bool) {
	title, ok := c[postID]
	if !ok {
		return "", "", false
	}
	return title, fmt.Sprintf("https://binjuhor.com/posts/%d", postID), true
}

type noopLimiter struct{}

func (noopLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	Init(service.New(
		&memStore{},
		noopLimiter{},
		memCatalog{1: "A Great Post"},
		notify.NewDispatcher(notify.NewLogNotifier(logger), time.Second, logger),
		service.Config{SiteName: "binjuhor's blog", AdminEmail: "admin@binjuhor.com"},
	))

	router := gin.New()
	apiRg := router.Group("apis")
	apiRg.POST("posts/:id/like", LikePost)
	apiRg.POST("posts/:id/status", GetLikeStatus)
	apiRg.GET("posts/top-liked", ListTopLiked)
	router.GET("feeds/top-liked", GetTopLikedFeed)
	return router
}

func doRequest(router *gin.Engine, method, path, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Client-IP", ip)
	router.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) (ginx.Response, service.Result) {
	t.Helper()

	var resp ginx.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var result service.Result
	if resp.Data != nil {
		raw, err := json.Marshal(resp.Data)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(raw, &result))
	}
	return resp, result
}

func TestLikePostAPI(t *testing.T) {
	router := newTestRouter(t)

	// 首次点赞
	w := doRequest(router, http.MethodPost, "/apis/posts/1/like", "1.2.3.4")
	assert.Equal(t, http.StatusOK, w.Code)
	_, result := decodeResp(t, w)
	assert.Equal(t, service.Result{Likes: 1, HasLiked: true}, result)

	// 重复点赞
	w = doRequest(router, http.MethodPost, "/apis/posts/1/like", "1.2.3.4")
	assert.Equal(t, http.StatusForbidden, w.Code)
	resp, _ := decodeResp(t, w)
	assert.Equal(t, service.KindAlreadyLiked, resp.Kind)

	// 目标不合法
	for _, path := range []string{"/apis/posts/0/like", "/apis/posts/-1/like", "/apis/posts/xyz/like", "/apis/posts/999/like"} {
		w = doRequest(router, http.MethodPost, path, "1.2.3.4")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp, _ = decodeResp(t, w)
		assert.Equal(t, service.KindInvalidTarget, resp.Kind)
	}
}

func TestGetLikeStatusAPI(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/apis/posts/1/status", "1.2.3.4")
	assert.Equal(t, http.StatusOK, w.Code)
	_, result := decodeResp(t, w)
	assert.Equal(t, service.Result{Likes: 0, HasLiked: false}, result)

	_ = doRequest(router, http.MethodPost, "/apis/posts/1/like", "1.2.3.4")

	// 点赞主体视角
	w = doRequest(router, http.MethodPost, "/apis/posts/1/status", "1.2.3.4")
	_, result = decodeResp(t, w)
	assert.Equal(t, service.Result{Likes: 1, HasLiked: true}, result)

	// 其他访客视角
	w = doRequest(router, http.MethodPost, "/apis/posts/1/status", "5.6.7.8")
	_, result = decodeResp(t, w)
	assert.Equal(t, service.Result{Likes: 1, HasLiked: false}, result)
}

func TestListTopLikedAPI(t *testing.T) {
	router := newTestRouter(t)

	_ = doRequest(router, http.MethodPost, "/apis/posts/1/like", "1.2.3.4")
	_ = doRequest(router, http.MethodPost, "/apis/posts/1/like", "5.6.7.8")

	w := doRequest(router, http.MethodGet, "/apis/posts/top-liked?limit=5", "1.2.3.4")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp ginx.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var topPosts []service.TopPost
	raw, err := json.Marshal(resp.Data)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(raw, &topPosts))
	assert.Equal(t, []service.TopPost{
		{PostID: 1, Title: "A Great Post", URL: "https://binjuhor.com/posts/1", Likes: 2},
	}, topPosts)
}

func TestGetTopLikedFeedAPI(t *testing.T) {
	router := newTestRouter(t)

	_ = doRequest(router, http.MethodPost, "/apis/posts/1/like", "1.2.3.4")

	w := doRequest(router, http.MethodGet, "/feeds/top-liked", "1.2.3.4")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "A Great Post (1 likes)")
}
