package render

import (
	"sync/atomic"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/status"
)

// Metric keys published by the pipeline
const (
	MetricFramesRendered = "render.frames"
	MetricCellsChanged   = "render.cells_changed"
)

// Terminal writes frames to the display and returns how many cells it wrote
// force redraws every cell of cur regardless of prev
type Terminal interface {
	Draw(prev, cur core.Frame, force bool) int
}

// Pipeline renders frames from a channel on its own goroutine
// Closing the channel is the only stop signal
type Pipeline struct {
	term       Terminal
	cols, rows int
	frames     <-chan core.Frame
	onPanic    func(any)

	metrics  *status.Registry
	rendered *atomic.Int64
	changed  *atomic.Int64

	done chan struct{}
}

// NewPipeline creates an unstarted pipeline for cols x rows frames
// Counters go to metrics; a nil registry gets a private one
func NewPipeline(term Terminal, cols, rows int, frames <-chan core.Frame, metrics *status.Registry) *Pipeline {
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	return &Pipeline{
		term:     term,
		cols:     cols,
		rows:     rows,
		frames:   frames,
		metrics:  metrics,
		rendered: metrics.Counter(MetricFramesRendered),
		changed:  metrics.Counter(MetricCellsChanged),
		done:     make(chan struct{}),
	}
}

// SetCrashHandler installs a handler for panics on the render goroutine
// Without one the panic propagates
func (p *Pipeline) SetCrashHandler(fn func(any)) {
	p.onPanic = fn
}

// Start launches the render goroutine
func (p *Pipeline) Start() {
	go p.run()
}

// Wait blocks until the render goroutine has exited
func (p *Pipeline) Wait() {
	<-p.done
}

// Rendered returns how many frames were drawn after the baseline
func (p *Pipeline) Rendered() int64 {
	return p.rendered.Load()
}

func (p *Pipeline) run() {
	defer close(p.done)
	if p.onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				p.onPanic(r)
			}
		}()
	}

	last := core.NewFrame(p.cols, p.rows)
	p.term.Draw(last, last, true)

	for cur := range p.frames {
		p.changed.Add(int64(p.term.Draw(last, cur, false)))
		last = cur
		p.rendered.Add(1)
	}
}
