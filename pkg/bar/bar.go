// Package bar renders terminal progress for long running CANape jobs.
package bar

import (
	"io"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var theme = progressbar.Theme{
	Saucer:        "[green]=[reset]",
	SaucerHead:    "[green]>[reset]",
	SaucerPadding: " ",
	BarStart:      "[",
	BarEnd:        "]",
}

// New returns a bar counting to length on the ANSI aware stdout.
func New(length int, text string) *progressbar.ProgressBar {
	return NewWriter(ansi.NewAnsiStdout(), length, text)
}

func NewWriter(w io.Writer, length int, text string) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		length,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription(text),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(theme),
	)
}

// Spinner is an indeterminate bar for jobs without a known end, like a
// running script or recorder.
func Spinner(text string) *progressbar.ProgressBar {
	return SpinnerWriter(ansi.NewAnsiStdout(), text, 65*time.Millisecond)
}

// SpinnerWriter renders at most once per throttle, 0 renders on every
// Add.
func SpinnerWriter(w io.Writer, text string, throttle time.Duration) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(text),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(throttle),
		progressbar.OptionClearOnFinish(),
	)
}
