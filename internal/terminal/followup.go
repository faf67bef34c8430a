package terminal

import (
	"errors"
)

// set of follow up messages
const (
	MsgSuggestedCommands = "Try running instead"
	MsgReferenceLinks    = "Refer to the following links for more information"
)

var (
	followupFields = []string{logFieldMessage, logFieldFollowups}

	errEmptyFollowup = errors.New("cannot create a follow up message without items")
)

const (
	logFieldFollowups = "followups"
)

type followup struct {
	list
}

func newFollowup(message string, items []interface{}) followup {
	return followup{newList(message, items)}
}

func (f followup) Message() (string, error) {
	if len(f.data) == 0 {
		return "", errEmptyFollowup
	}
	return f.list.Message()
}

func (f followup) Payload() ([]string, map[string]interface{}, error) {
	if len(f.data) == 0 {
		return nil, nil, errEmptyFollowup
	}
	return followupFields, map[string]interface{}{
		logFieldMessage:   f.message,
		logFieldFollowups: f.data,
	}, nil
}
