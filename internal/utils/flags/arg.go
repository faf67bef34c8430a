package flags

import (
	"fmt"
	"strings"
)

// Arg is a flag arg represented by its name and optional value
type Arg struct {
	Name  string
	Value interface{}
}

func (a Arg) String() string {
	s := " --" + a.Name

	switch v := a.Value.(type) {
	case nil:
		return s
	case string:
		if strings.ContainsAny(v, " \t") {
			return fmt.Sprintf("%s %q", s, v)
		}
	}
	return fmt.Sprintf("%s %v", s, a.Value)
}
