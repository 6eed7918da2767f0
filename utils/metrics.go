package utils

import (
	"sync"
	"time"
)

// Metrics содержит метрики приложения
type Metrics struct {
	mu sync.RWMutex

	// Метрики запросов
	TotalRequests   int64
	FailedRequests  int64
	LastRequestTime time.Time

	// Метрики доменных операций
	Operations map[string]int64

	StartTime time.Time
}

var (
	metrics     *Metrics
	metricsOnce sync.Once
)

// GetMetrics возвращает экземпляр метрик
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			Operations: make(map[string]int64),
			StartTime:  time.Now(),
		}
	})
	return metrics
}

// RecordRequest записывает метрики HTTP-запроса
func (m *Metrics) RecordRequest(statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalRequests++
	m.LastRequestTime = time.Now()
	if statusCode >= 500 {
		m.FailedRequests++
	}
}

// RecordOperation записывает выполнение доменной операции
func (m *Metrics) RecordOperation(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Operations[operation]++
}

// GetMetricsSnapshot возвращает снимок текущих метрик
func (m *Metrics) GetMetricsSnapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	operations := make(map[string]int64, len(m.Operations))
	for name, count := range m.Operations {
		operations[name] = count
	}

	return map[string]interface{}{
		"total_requests":  m.TotalRequests,
		"failed_requests": m.FailedRequests,
		"uptime":          time.Since(m.StartTime).String(),
		"operations":      operations,
	}
}

// ResetMetrics сбрасывает все метрики
func (m *Metrics) ResetMetrics() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalRequests = 0
	m.FailedRequests = 0
	m.Operations = make(map[string]int64)
}
