package utils

import (
	"sync"
	"time"
)

// RateLimiter реализует ограничение частоты запросов по скользящему окну
type RateLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	limit   int
	window  time.Duration
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		history: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}
}

// prune удаляет запросы за пределами окна. Вызывается под мьютексом.
func (rl *RateLimiter) prune(key string, now time.Time) {
	windowStart := now.Add(-rl.window)
	kept := rl.history[key][:0]
	for _, t := range rl.history[key] {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}
	rl.history[key] = kept
}

// Allow проверяет, разрешен ли запрос для ключа
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.prune(key, now)

	if len(rl.history[key]) >= rl.limit {
		return false
	}

	rl.history[key] = append(rl.history[key], now)
	return true
}

// GetRemaining возвращает количество оставшихся запросов для ключа
func (rl *RateLimiter) GetRemaining(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune(key, time.Now())
	return rl.limit - len(rl.history[key])
}

// Reset сбрасывает счетчик для ключа
func (rl *RateLimiter) Reset(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.history, key)
}
