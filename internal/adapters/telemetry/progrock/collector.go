package progrock

import (
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/bochsbuild/internal/core/domain"
)

// Collector is a progrock.Writer that keeps the latest state of every vertex
// written to it, in the order vertices first appeared.
type Collector struct {
	mu       sync.Mutex
	order    []string
	vertices map[string]*progrock.Vertex
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{vertices: make(map[string]*progrock.Vertex)}
}

// WriteStatus applies a status update from the recorder.
func (c *Collector) WriteStatus(update *progrock.StatusUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range update.Vertexes {
		if _, seen := c.vertices[v.Id]; !seen {
			c.order = append(c.order, v.Id)
		}
		c.vertices[v.Id] = v
	}
	return nil
}

// Close implements progrock.Writer.
func (c *Collector) Close() error {
	return nil
}

// Steps returns a result for every vertex seen so far.
func (c *Collector) Steps() []domain.StepResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	steps := make([]domain.StepResult, 0, len(c.order))
	for _, id := range c.order {
		steps = append(steps, stepResult(c.vertices[id]))
	}
	return steps
}

func stepResult(v *progrock.Vertex) domain.StepResult {
	step := domain.StepResult{Name: v.Name, Status: domain.StepRunning}

	switch {
	case v.Completed == nil:
		return step
	case v.Error != nil:
		step.Status = domain.StepFailed
	case v.Cached:
		step.Status = domain.StepCached
	default:
		step.Status = domain.StepDone
	}

	if v.Started != nil {
		step.Duration = v.Completed.AsTime().Sub(v.Started.AsTime())
	}
	return step
}
