package progress

import "log/slog"

// logInterval controls how often Log emits a per-step entry
const logInterval = 10000

// Log reports progress through slog, for non-interactive runs
type Log struct{}

func (Log) Step(phase string, n int) {
	if n%logInterval == 0 {
		slog.Debug("Processing", "phase", phase, "records", n)
	}
}

func (Log) Done(phase string, n int) {
	slog.Info("Phase complete", "phase", phase, "records", n)
}
