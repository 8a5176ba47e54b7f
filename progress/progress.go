// Package progress reports per-phase record counts during a conversion run.
package progress

// Reporter receives record counts as a conversion phase advances. Step is
// called once per record processed and Done once when the phase completes.
type Reporter interface {
	Step(phase string, n int)
	Done(phase string, n int)
}

// Nop discards all progress updates
type Nop struct{}

func (Nop) Step(string, int) {}

func (Nop) Done(string, int) {}
