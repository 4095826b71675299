package bench

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// progress counts finished lengths across experiments and logs on a ticker.
type progress struct {
	total     int32
	done      int32
	busy      int32
	workers   int
	mu        sync.Mutex
	active    map[string]int
	stop      chan struct{}
	stopped   chan struct{}
	lastDone  int32
	lastMoved time.Time
}

func startProgress(interval time.Duration, total, workers int) *progress {
	p := &progress{
		total:     int32(total),
		workers:   workers,
		active:    map[string]int{},
		stop:      make(chan struct{}),
		stopped:   make(chan struct{}),
		lastMoved: time.Now(),
	}
	if interval <= 0 {
		close(p.stopped)
		return p
	}
	go func() {
		defer close(p.stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.log(interval)
			}
		}
	}()
	return p
}

func (p *progress) log(interval time.Duration) {
	done := atomic.LoadInt32(&p.done)
	busy := atomic.LoadInt32(&p.busy)
	if done != p.lastDone {
		p.lastDone, p.lastMoved = done, time.Now()
	}
	p.mu.Lock()
	names := make([]string, 0, len(p.active))
	for k, n := range p.active {
		names = append(names, k+"@"+strconv.Itoa(n))
	}
	p.mu.Unlock()
	progressLog.Infof("workers_busy=%d/%d done=%d/%d active=[%s]", busy, p.workers, done, p.total, strings.Join(names, ","))
	if still := time.Since(p.lastMoved); still >= 2*interval {
		progressLog.Debugf("no length finished for %s", still.Truncate(time.Second))
	}
}

func (p *progress) begin(experiment string) {
	atomic.AddInt32(&p.busy, 1)
	p.mu.Lock()
	p.active[experiment] = 0
	p.mu.Unlock()
}

func (p *progress) at(experiment string, length int) {
	p.mu.Lock()
	p.active[experiment] = length
	p.mu.Unlock()
}

func (p *progress) lengthDone() { atomic.AddInt32(&p.done, 1) }

func (p *progress) end(experiment string) {
	atomic.AddInt32(&p.busy, -1)
	p.mu.Lock()
	delete(p.active, experiment)
	p.mu.Unlock()
}

func (p *progress) close() {
	select {
	case <-p.stopped:
	default:
		close(p.stop)
		<-p.stopped
	}
}
