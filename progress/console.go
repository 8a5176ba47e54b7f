package progress

import (
	"fmt"
	"io"

	"github.com/mattn/go-colorable"
)

// consoleInterval controls how often the console counter redraws
const consoleInterval = 1000

// Console renders an overwriting one-line counter, for interactive runs
type Console struct {
	W io.Writer
}

// NewConsole returns a Console writing to stderr
func NewConsole() *Console {
	return &Console{W: colorable.NewColorableStderr()}
}

// Step redraws the counter every consoleInterval records
func (c *Console) Step(phase string, n int) {
	if n%consoleInterval == 0 {
		fmt.Fprintf(c.W, "\r%s: %d", phase, n)
	}
}

// Done prints the final count and terminates the line
func (c *Console) Done(phase string, n int) {
	fmt.Fprintf(c.W, "\r%s: %d\n", phase, n)
}
