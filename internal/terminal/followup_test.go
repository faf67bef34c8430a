package terminal

import (
	"testing"

	"github.com/deomiarn/securevault/internal/utils/test/assert"
)

func TestFollowup(t *testing.T) {
	t.Run("Should print the suggested commands", func(t *testing.T) {
		message, err := newFollowup(MsgSuggestedCommands, []interface{}{"vault-cli login"}).Message()
		assert.Nil(t, err)
		assert.Equal(t, `Try running instead
  vault-cli login`, message)
	})

	t.Run("Should produce a payload with the followups", func(t *testing.T) {
		keys, payload, err := newFollowup(MsgSuggestedCommands, []interface{}{"vault-cli login", "vault-cli whoami"}).Payload()
		assert.Nil(t, err)
		assert.Equal(t, []string{"message", "followups"}, keys)
		assert.Equal(t, map[string]interface{}{
			"message":   MsgSuggestedCommands,
			"followups": []string{"vault-cli login", "vault-cli whoami"},
		}, payload)
	})

	t.Run("Should fail without any items", func(t *testing.T) {
		f := newFollowup(MsgReferenceLinks, nil)

		_, err := f.Message()
		assert.Equal(t, errEmptyFollowup, err)

		_, _, err = f.Payload()
		assert.Equal(t, errEmptyFollowup, err)
	})
}
