// Package ratelimit 提供以 key (例如 client IP) 為單位的 token bucket 限流器。
package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter 每個 key 各自一個 rate.Limiter：容量 limit，每 window 補滿一次。
// 它是執行緒安全的 (Thread-safe)。閒置超過 window 的 key 由 EvictIdle / Run 清除。
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	every    rate.Limit
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Option 定義 Limiter 的配置選項函數
type Option func(*Limiter)

// WithClock 替換時間來源 (測試用)
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New 建立 Limiter，limit <= 0 代表不限流
func New(limit int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		every:    rate.Inf,
		now:      time.Now,
	}
	if limit > 0 && window > 0 {
		l.every = rate.Every(window / time.Duration(limit))
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Limit 每個視窗允許的請求數
func (l *Limiter) Limit() int {
	return l.limit
}

// Allow 判斷是否允許本次請求，允許時扣掉一個 token
func (l *Limiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	return l.visitor(key, now).limiter.AllowN(now, 1)
}

// Remaining 回傳目前可用的 token 數
func (l *Limiter) Remaining(key string) int {
	if l.limit <= 0 {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		return l.limit
	}
	tokens := math.Floor(v.limiter.TokensAt(l.now()))
	if tokens < 0 {
		return 0
	}
	return int(tokens)
}

// ResetTime 回傳下一個 token 可用的時間
func (l *Limiter) ResetTime(key string) time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok || l.every == rate.Inf {
		return now
	}
	tokens := v.limiter.TokensAt(now)
	if tokens >= 1 {
		return now
	}
	wait := (1 - tokens) / float64(l.every)
	return now.Add(time.Duration(wait * float64(time.Second)))
}

// Reset 清除指定 key 的紀錄
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.visitors, key)
}

// Len 目前追蹤中的 key 數量
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// EvictIdle 移除閒置超過一個 window 的 key (此時 bucket 已補滿，移除不影響限流結果)
//
// 回傳:
//
//	int: 移除的 key 數量
func (l *Limiter) EvictIdle() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.window {
			delete(l.visitors, key)
			removed++
		}
	}
	return removed
}

// Run 每隔 interval 執行一次 EvictIdle，直到 ctx 結束
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = l.window
	}
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.EvictIdle()
		}
	}
}

// visitor 取得或建立 key 對應的 bucket；呼叫端必須持有鎖
func (l *Limiter) visitor(key string, now time.Time) *visitor {
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.every, l.limit)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v
}
