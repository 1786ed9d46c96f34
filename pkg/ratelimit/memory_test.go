package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/binjuhor/likepost/pkg/identity"
)

func TestMemoryLimiterAllow(t *testing.T) {
	limiter := NewMemoryLimiter(time.Minute)
	defer limiter.Stop()

	ctx := context.Background()
	key := Key(identity.Identity{IP: "1.2.3.4"}, 42)

	allowed, err := limiter.Allow(ctx, key)
	assert.NoError(t, err)
	assert.True(t, allowed)

	// 窗口内再次尝试被拒绝
	allowed, err = limiter.Allow(ctx, key)
	assert.NoError(t, err)
	assert.False(t, allowed)

	// 不同的键互不影响
	allowed, err = limiter.Allow(ctx, Key(identity.Identity{IP: "5.6.7.8"}, 42))
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiterExpiry(t *testing.T) {
	limiter := NewMemoryLimiter(20 * time.Millisecond)
	defer limiter.Stop()

	ctx := context.Background()
	key := Key(identity.Identity{UserID: 1, IP: "1.2.3.4"}, 42)

	allowed, _ := limiter.Allow(ctx, key)
	assert.True(t, allowed)

	allowed, _ = limiter.Allow(ctx, key)
	assert.False(t, allowed)

	// 窗口过期后重新放行
	time.Sleep(30 * time.Millisecond)
	allowed, _ = limiter.Allow(ctx, key)
	assert.True(t, allowed)
}

func TestMemoryLimiterConcurrency(t *testing.T) {
	limiter := NewMemoryLimiter(time.Minute)
	defer limiter.Stop()

	ctx := context.Background()
	key := Key(identity.Identity{IP: "9.9.9.9"}, 42)

	var allowedCount int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow(ctx, key); allowed {
				atomic.AddInt64(&allowedCount, 1)
			}
		}()
	}
	wg.Wait()

	// 同一个键并发尝试时有且只有一次被放行
	assert.Equal(t, int64(1), allowedCount)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "like:rl:7:1.2.3.4:42", Key(identity.Identity{UserID: 7, IP: "1.2.3.4"}, 42))
	assert.Equal(t, "like:rl:0:unknown:1", Key(identity.Identity{IP: identity.UnknownIP}, 1))
}
