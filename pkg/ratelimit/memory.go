package ratelimit

import (
	"context"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// 过期条目的清理周期
const janitorInterval = time.Minute

// MemoryLimiter 进程内限流器，记录每个键的过期时间
//
// 检查与写入通过 cmap 的 Upsert 在分片锁内完成，对同一个键并发调用时最多一次放行
type MemoryLimiter struct {
	window  time.Duration
	entries cmap.ConcurrentMap[string, time.Time]
	stopCh  chan struct{}
}

// NewMemoryLimiter ...
func NewMemoryLimiter(window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		window:  window,
		entries: cmap.New[time.Time](),
		stopCh:  make(chan struct{}),
	}
	go l.janitor()
	return l
}

// Allow ...
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	allowed := false
	now := time.Now()

	l.entries.Upsert(key, now.Add(l.window), func(exist bool, valueInMap, newValue time.Time) time.Time {
		// 不存在或已过期才放行，过期判断与续期在同一把分片锁内
		if !exist || now.After(valueInMap) {
			allowed = true
			return newValue
		}
		return valueInMap
	})

	return allowed, nil
}

// Stop 停止后台清理
func (l *MemoryLimiter) Stop() {
	close(l.stopCh)
}

// 周期性清理已过期的条目，过期条目即使不清理也不会影响放行判断
func (l *MemoryLimiter) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			for _, key := range l.entries.Keys() {
				l.entries.RemoveCb(key, func(key string, v time.Time, exists bool) bool {
					return exists && now.After(v)
				})
			}
		case <-l.stopCh:
			return
		}
	}
}
