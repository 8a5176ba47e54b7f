package progress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleStepRedrawsAtInterval(t *testing.T) {
	var out strings.Builder
	c := &Console{W: &out}

	for n := 1; n <= consoleInterval-1; n++ {
		c.Step("artists", n)
	}
	assert.Empty(t, out.String())

	c.Step("artists", consoleInterval)
	assert.Equal(t, "\rartists: 1000", out.String())
}

func TestConsoleDoneTerminatesLine(t *testing.T) {
	var out strings.Builder
	c := &Console{W: &out}

	c.Step("tracks", consoleInterval)
	c.Done("tracks", 1234)

	assert.Equal(t, "\rtracks: 1000\rtracks: 1234\n", out.String())
}
