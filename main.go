package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/csmith/envflag/v2"
	"github.com/csmith/slogflags"
	"github.com/mattn/go-isatty"
	"github.com/rdstools/rdsfeed/feed"
	"github.com/rdstools/rdsfeed/progress"
)

var (
	progressMode = flag.String("progress", "auto", "Progress reporting: auto, tty, log or off")
)

func main() {
	envflag.Parse()
	_ = slogflags.Logger(slogflags.WithSetDefault(true))

	if flag.NArg() != 2 {
		fmt.Println("usage: rdsfeed <input xml file> <output feed file>")
		return
	}

	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	start := time.Now()
	artists, emitted, err := feed.Convert(inputPath, outputPath, reporter())
	if err != nil {
		slog.Error("Conversion failed", "input", inputPath, "output", outputPath, "error", err)
		os.Exit(exitCode(err))
	}

	slog.Info("Conversion complete", "artists", artists, "tracks", emitted, "elapsed", time.Since(start))
}

// reporter selects the progress implementation for the -progress flag
func reporter() progress.Reporter {
	switch *progressMode {
	case "tty":
		return progress.NewConsole()
	case "log":
		return progress.Log{}
	case "off":
		return progress.Nop{}
	default:
		if isatty.IsTerminal(os.Stderr.Fd()) {
			return progress.NewConsole()
		}
		return progress.Log{}
	}
}

// exitCode maps each fatal error class to a distinct code for automation:
// 1 for malformed input or unreadable source, 2 for a missing required
// field, 3 for an unwritable destination.
func exitCode(err error) int {
	var missing *feed.MissingFieldError
	var write *feed.OutputWriteError
	switch {
	case errors.As(err, &missing):
		return 2
	case errors.As(err, &write):
		return 3
	default:
		return 1
	}
}
