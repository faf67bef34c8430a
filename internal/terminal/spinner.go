package terminal

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerDots is the default spinner animation
var SpinnerDots = []string{".  ", ".. ", "...", "   "}

const defaultSpinnerInterval = 250 * time.Millisecond

// SpinnerOptions configures the spinner animation
type SpinnerOptions struct {
	Frames   []string
	Interval time.Duration
}

// Spinner animates a message while a long running call completes
type Spinner interface {
	Start()
	Stop()
	SetMessage(message string)
}

type uiSpinner struct {
	*spinner.Spinner
}

func newUISpinner(message string, w io.Writer, opts SpinnerOptions) uiSpinner {
	frames := opts.Frames
	if len(frames) == 0 {
		frames = SpinnerDots
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = defaultSpinnerInterval
	}

	s := uiSpinner{spinner.New(frames, interval, spinner.WithWriter(w))}
	s.SetMessage(message)
	return s
}

func (s uiSpinner) SetMessage(message string) { s.Suffix = " " + message }

// noopSpinner stands in when output is redirected or structured
type noopSpinner struct{}

func (noopSpinner) Start()            {}
func (noopSpinner) Stop()             {}
func (noopSpinner) SetMessage(string) {}
