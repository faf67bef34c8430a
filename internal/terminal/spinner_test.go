package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/deomiarn/securevault/internal/utils/test/assert"
)

func TestSpinner(t *testing.T) {
	t.Run("Should create a spinner with the default animation", func(t *testing.T) {
		out := new(bytes.Buffer)

		s := newUISpinner("Exporting audit events...", out, SpinnerOptions{})
		assert.Equal(t, " Exporting audit events...", s.Suffix)
		assert.Equal(t, defaultSpinnerInterval, s.Delay)
		assert.True(t, s.Writer == out, "expected the spinner to write to the provided writer")

		s.SetMessage("Almost done...")
		assert.Equal(t, " Almost done...", s.Suffix)
	})

	t.Run("Should create a spinner with the provided interval", func(t *testing.T) {
		s := newUISpinner("Exporting", new(bytes.Buffer), SpinnerOptions{Frames: []string{"-", "+"}, Interval: time.Second})
		assert.Equal(t, time.Second, s.Delay)
	})

	for _, tc := range []struct {
		description string
		config      UIConfig
	}{
		{"Should not animate when printing structured output", UIConfig{OutputFormat: OutputFormatJSON}},
		{"Should not animate when the error writer is not a terminal", UIConfig{}},
	} {
		t.Run(tc.description, func(t *testing.T) {
			ui := NewUI(tc.config, nil, new(bytes.Buffer), new(bytes.Buffer))

			_, ok := ui.Spinner("Exporting", SpinnerOptions{}).(noopSpinner)
			assert.True(t, ok, "expected a spinner that does nothing")
		})
	}
}
