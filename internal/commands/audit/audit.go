package audit

import (
	"errors"

	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagAction      = "action"
	flagActionUsage = "Filter the events by action, e.g. SECRET_CREATED"

	flagResourceType      = "resource-type"
	flagResourceTypeUsage = "Filter the events by resource type, available options: [USER, SECRET, FOLDER, SHARE]"

	flagStatus      = "status"
	flagStatusUsage = "Filter the events by status, available options: [SUCCESS, FAILURE]"

	flagFrom      = "from"
	flagFromUsage = "Specify the date to list events from"

	flagTo      = "to"
	flagToUsage = "Specify the date to list events until"
)

var (
	errInvalidDateRange = errors.New("the from date must be before the to date")
)

// filterInputs are the event filters shared by the audit commands
type filterInputs struct {
	action       vault.AuditAction
	resourceType vault.ResourceType
	status       vault.EventStatus
	from         flags.Date
	to           flags.Date
}

func (i *filterInputs) Flags(fs *pflag.FlagSet) {
	fs.Var(&i.action, flagAction, flagActionUsage)
	fs.Var(&i.resourceType, flagResourceType, flagResourceTypeUsage)
	fs.Var(&i.status, flagStatus, flagStatusUsage)
	fs.Var(&i.from, flagFrom, flagFromUsage)
	fs.Var(&i.to, flagTo, flagToUsage)
}

func (i filterInputs) validate() error {
	if !i.from.Time.IsZero() && !i.to.Time.IsZero() && i.to.Time.Before(i.from.Time) {
		return errInvalidDateRange
	}
	return nil
}

func (i filterInputs) filter() vault.AuditFilter {
	return vault.AuditFilter{
		Action:       i.action,
		ResourceType: i.resourceType,
		Status:       i.status,
		From:         i.from.Time,
		To:           i.to.Time,
	}
}

func (i filterInputs) args() []flags.Arg {
	var args []flags.Arg
	if i.action != vault.AuditActionEmpty {
		args = append(args, flags.Arg{Name: flagAction, Value: i.action})
	}
	if i.resourceType != vault.ResourceTypeEmpty {
		args = append(args, flags.Arg{Name: flagResourceType, Value: i.resourceType})
	}
	if i.status != vault.EventStatusEmpty {
		args = append(args, flags.Arg{Name: flagStatus, Value: i.status})
	}
	if !i.from.Time.IsZero() {
		args = append(args, flags.Arg{Name: flagFrom, Value: i.from.String()})
	}
	if !i.to.Time.IsZero() {
		args = append(args, flags.Arg{Name: flagTo, Value: i.to.String()})
	}
	return args
}
