package terminal

import (
	"reflect"
	"testing"

	"github.com/deomiarn/securevault/internal/utils/test/assert"

	"github.com/google/go-cmp/cmp"
)

func TestList(t *testing.T) {
	assert.RegisterOpts(reflect.TypeOf(list{}), cmp.AllowUnexported(list{}))

	data := []interface{}{
		"db-password",
		1,
		1.234567890123,
		[]string{"a", "b"},
		testStringer("API_KEY"),
	}

	t.Run("Should create a list with its values parsed as strings", func(t *testing.T) {
		assert.Equal(t, list{
			"found secrets",
			[]string{"db-password", "1", "1.234567890123", "[a b]", "API_KEY"},
		}, newList("found secrets", data))
	})

	t.Run("Should print the message followed by the indented items", func(t *testing.T) {
		message, err := newList("found secrets", data).Message()
		assert.Nil(t, err)
		assert.Equal(t, `found secrets
  db-password
  1
  1.234567890123
  [a b]
  API_KEY`, message)
	})

	t.Run("Should print only the message when the list has no items", func(t *testing.T) {
		message, err := newList("nothing here", nil).Message()
		assert.Nil(t, err)
		assert.Equal(t, "nothing here", message)
	})

	t.Run("Should produce a payload with the message and items", func(t *testing.T) {
		keys, payload, err := newList("found secrets", data[:2]).Payload()
		assert.Nil(t, err)
		assert.Equal(t, []string{"message", "data"}, keys)
		assert.Equal(t, map[string]interface{}{
			"message": "found secrets",
			"data":    []string{"db-password", "1"},
		}, payload)
	})
}

type testStringer string

func (s testStringer) String() string { return string(s) }
