package login

import (
	"testing"

	"github.com/deomiarn/securevault/internal/utils/test/assert"
	"github.com/deomiarn/securevault/internal/utils/test/mock"

	"github.com/Netflix/go-expect"
)

func TestLoginInputs(t *testing.T) {
	for _, tc := range []struct {
		description string
		inputs      inputs
		storedEmail string
		procedure   func(c *expect.Console)
		expected    inputs
	}{
		{
			description: "Should prompt for the email when not provided",
			inputs:      inputs{Password: "s3cret"},
			procedure: func(c *expect.Console) {
				c.ExpectString("Email")
				c.SendLine("ada@example.com")
				c.ExpectEOF()
			},
			expected: inputs{Email: "ada@example.com", Password: "s3cret"},
		},
		{
			description: "Should prompt for the password when not provided",
			inputs:      inputs{Email: "ada@example.com"},
			procedure: func(c *expect.Console) {
				c.ExpectString("Password")
				c.SendLine("s3cret")
				c.ExpectEOF()
			},
			expected: inputs{Email: "ada@example.com", Password: "s3cret"},
		},
		{
			description: "Should default the email to the last login",
			storedEmail: "grace@example.com",
			procedure: func(c *expect.Console) {
				c.ExpectString("Email")
				c.SendLine("")
				c.ExpectString("Password")
				c.SendLine("s3cret")
				c.ExpectEOF()
			},
			expected: inputs{Email: "grace@example.com", Password: "s3cret"},
		},
		{
			description: "Should not prompt for inputs when flags provide the data",
			inputs:      inputs{Email: "ada@example.com", Password: "s3cret", Code: "123456"},
			procedure:   func(c *expect.Console) {},
			expected:    inputs{Email: "ada@example.com", Password: "s3cret", Code: "123456"},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			_, console, _, ui, consoleErr := mock.NewVT10XConsole()
			assert.Nil(t, consoleErr)
			defer console.Close()

			profile := mock.NewProfile(t)
			profile.SetEmail(tc.storedEmail)

			doneCh := make(chan struct{})
			go func() {
				defer close(doneCh)
				tc.procedure(console)
			}()

			assert.Nil(t, tc.inputs.Resolve(profile, ui))

			console.Tty().Close() // flush the writers
			<-doneCh              // wait for procedure to complete

			assert.Equal(t, tc.expected, tc.inputs)
		})
	}
}
