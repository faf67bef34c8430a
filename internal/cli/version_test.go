package cli

import (
	"testing"

	"github.com/deomiarn/securevault/internal/utils/flags"
	"github.com/deomiarn/securevault/internal/utils/test/assert"
)

func TestCommandDisplay(t *testing.T) {
	for _, tc := range []struct {
		description string
		args        []flags.Arg
		expected    string
	}{
		{"Should display the command alone", nil, "vault-cli audit list"},
		{
			"Should display the command with its args",
			[]flags.Arg{{Name: "page", Value: 2}, {Name: "keyword", Value: "db password"}, {Name: "verbose"}},
			`vault-cli audit list --page 2 --keyword "db password" --verbose`,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, CommandDisplay("audit list", tc.args))
		})
	}
}
