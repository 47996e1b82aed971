package scanner

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// progressInterval 是两次进度输出之间的最小间隔。
const progressInterval = 200 * time.Millisecond

// Tracker 在扫描过程中累计吞吐并按节流间隔输出进度。
// 计数器使用原子操作，可被全部 worker 并发更新；
// 输出本身由互斥锁保护，避免进度行互相撕裂。
type Tracker struct {
	files atomic.Int64
	lines atomic.Int64
	start time.Time

	mu         sync.Mutex
	lastUpdate time.Time
	writer     io.Writer
}

// NewTracker 创建进度追踪器，writer 通常是 os.Stderr。
func NewTracker(writer io.Writer) *Tracker {
	now := time.Now()
	return &Tracker{
		start:      now,
		lastUpdate: now,
		writer:     writer,
	}
}

// Update 累加一批文件与行数，并在超过节流间隔时输出进度。
func (t *Tracker) Update(files int64, lines int64) {
	t.files.Add(files)
	t.lines.Add(lines)

	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if now.Sub(t.lastUpdate) < progressInterval {
		return
	}
	t.lastUpdate = now

	elapsed := now.Sub(t.start).Seconds()
	fmt.Fprintf(t.writer, "\rProcessed %d files, %d lines (%.0f files/s, %.0f lines/s)",
		t.files.Load(),
		t.lines.Load(),
		safeRate(t.files.Load(), elapsed),
		safeRate(t.lines.Load(), elapsed),
	)
}

// Finish 输出最终吞吐统计并结束进度行。
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := time.Since(t.start).Seconds()
	fmt.Fprintf(t.writer, "\rProcessed %d files, %d lines in %.2fs (%.0f files/s, %.0f lines/s)\n",
		t.files.Load(),
		t.lines.Load(),
		elapsed,
		safeRate(t.files.Load(), elapsed),
		safeRate(t.lines.Load(), elapsed),
	)
}

// Files 返回已处理文件数。
func (t *Tracker) Files() int64 {
	return t.files.Load()
}

// Lines 返回已处理行数。
func (t *Tracker) Lines() int64 {
	return t.lines.Load()
}

// safeRate 计算速率，耗时过短时直接返回计数，避免除零与夸张数值。
func safeRate(value int64, elapsedSeconds float64) float64 {
	if elapsedSeconds < 0.001 {
		return float64(value)
	}
	return float64(value) / elapsedSeconds
}
