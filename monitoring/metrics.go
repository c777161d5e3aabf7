// Package monitoring 提供请求与预测计数
package monitoring

import (
	"runtime"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/atomic"

	"bcdiag/ml"
)

// DefaultMaxRoutes 默认最多跟踪的路径数量
const DefaultMaxRoutes = 128

// routeCounters 单个路径的计数
type routeCounters struct {
	total     *atomic.Int64
	status2xx *atomic.Int64
	status4xx *atomic.Int64
	status5xx *atomic.Int64
}

func newRouteCounters() *routeCounters {
	return &routeCounters{
		total:     atomic.NewInt64(0),
		status2xx: atomic.NewInt64(0),
		status4xx: atomic.NewInt64(0),
		status5xx: atomic.NewInt64(0),
	}
}

// RouteStats 路径统计快照
type RouteStats struct {
	Total     int64 `json:"total"`
	Status2xx int64 `json:"2xx"`
	Status4xx int64 `json:"4xx"`
	Status5xx int64 `json:"5xx"`
}

// PredictionStats 预测结果统计
type PredictionStats struct {
	Benign    int64 `json:"benign"`
	Malignant int64 `json:"malignant"`
}

// RuntimeStats 进程运行时指标
type RuntimeStats struct {
	Goroutines    int    `json:"goroutines"`
	HeapAllocByte uint64 `json:"heap_alloc_bytes"`
	NumGC         uint32 `json:"gc_count"`
}

// Snapshot 指标快照
type Snapshot struct {
	UptimeSeconds float64               `json:"uptime_seconds"`
	Requests      map[string]RouteStats `json:"requests"`
	Predictions   PredictionStats       `json:"predictions"`
	BatchUploads  int64                 `json:"batch_uploads"`
	Runtime       RuntimeStats          `json:"runtime"`
}

// Collector 指标收集器。路径集合由LRU限制大小，扫描器打出的大量未知路径只会挤掉最久未访问的条目
type Collector struct {
	routes       *lru.Cache[string, *routeCounters]
	benign       *atomic.Int64
	malignant    *atomic.Int64
	batchUploads *atomic.Int64
	startTime    time.Time
}

// NewCollector 创建指标收集器
func NewCollector(maxRoutes int) *Collector {
	if maxRoutes <= 0 {
		maxRoutes = DefaultMaxRoutes
	}
	// 容量为正时 lru.New 不会失败
	routes, _ := lru.New[string, *routeCounters](maxRoutes)

	return &Collector{
		routes:       routes,
		benign:       atomic.NewInt64(0),
		malignant:    atomic.NewInt64(0),
		batchUploads: atomic.NewInt64(0),
		startTime:    time.Now(),
	}
}

func (c *Collector) counters(path string) *routeCounters {
	if rc, ok := c.routes.Get(path); ok {
		return rc
	}
	rc := newRouteCounters()
	if prev, ok, _ := c.routes.PeekOrAdd(path, rc); ok {
		return prev
	}
	return rc
}

// RecordRequest 记录一次请求
func (c *Collector) RecordRequest(path string, status int) {
	rc := c.counters(path)
	rc.total.Inc()
	switch {
	case status >= 500:
		rc.status5xx.Inc()
	case status >= 400:
		rc.status4xx.Inc()
	case status >= 200 && status < 300:
		rc.status2xx.Inc()
	}
}

// RecordPrediction 记录一次单样本预测
func (c *Collector) RecordPrediction(class ml.Class) {
	if class == ml.Malignant {
		c.malignant.Inc()
		return
	}
	c.benign.Inc()
}

// RecordBatch 记录一次批量上传
func (c *Collector) RecordBatch() {
	c.batchUploads.Inc()
}

// Snapshot 获取当前指标快照
func (c *Collector) Snapshot() Snapshot {
	keys := c.routes.Keys()
	sort.Strings(keys)

	requests := make(map[string]RouteStats, len(keys))
	for _, key := range keys {
		rc, ok := c.routes.Peek(key)
		if !ok {
			continue
		}
		requests[key] = RouteStats{
			Total:     rc.total.Load(),
			Status2xx: rc.status2xx.Load(),
			Status4xx: rc.status4xx.Load(),
			Status5xx: rc.status5xx.Load(),
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Snapshot{
		UptimeSeconds: time.Since(c.startTime).Seconds(),
		Requests:      requests,
		Predictions: PredictionStats{
			Benign:    c.benign.Load(),
			Malignant: c.malignant.Load(),
		},
		BatchUploads: c.batchUploads.Load(),
		Runtime: RuntimeStats{
			Goroutines:    runtime.NumGoroutine(),
			HeapAllocByte: mem.HeapAlloc,
			NumGC:         mem.NumGC,
		},
	}
}
