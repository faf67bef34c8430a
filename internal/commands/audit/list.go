package audit

import (
	"errors"
	"fmt"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"
	"github.com/deomiarn/securevault/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagUser      = "user"
	flagUserShort = "u"
	flagUserUsage = "Filter the events by the ID of the user who performed them"

	flagKeyword      = "keyword"
	flagKeywordShort = "k"
	flagKeywordUsage = "Filter the events by a keyword found in their description"

	flagPage      = "page"
	flagPageUsage = "Specify the page of events to list"

	flagSize      = "size"
	flagSizeUsage = "Specify the number of events listed per page"

	maxPageSize = 100
)

const (
	headerTime     = "Time"
	headerAction   = "Action"
	headerResource = "Resource"
	headerStatus   = "Status"
	headerUser     = "User"
	headerDetails  = "Description"
)

var (
	errInvalidPage     = errors.New("page must be greater than 0")
	errInvalidPageSize = fmt.Errorf("size must be between 1 and %d", maxPageSize)
)

// CommandList is the `audit list` command
type CommandList struct {
	inputs listInputs
}

type listInputs struct {
	filterInputs
	user    string
	keyword string
	page    int
	size    int
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	cmd.inputs.filterInputs.Flags(fs)
	fs.StringVarP(&cmd.inputs.user, flagUser, flagUserShort, "", flagUserUsage)
	fs.StringVarP(&cmd.inputs.keyword, flagKeyword, flagKeywordShort, "", flagKeywordUsage)
	fs.IntVar(&cmd.inputs.page, flagPage, 1, flagPageUsage)
	fs.IntVar(&cmd.inputs.size, flagSize, vault.DefaultAuditPageSize, flagSizeUsage)
}

// Inputs is the command inputs
func (cmd *CommandList) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	filter := cmd.inputs.filter()
	filter.UserID = cmd.inputs.user
	filter.Keyword = cmd.inputs.keyword
	filter.Page = cmd.inputs.page - 1 // pages are zero-based on the server
	filter.Size = cmd.inputs.size

	page, err := clients.Vault.AuditEvents(filter)
	if err != nil {
		return err
	}

	if len(page.Content) == 0 {
		ui.Print(terminal.NewTextLog("No audit events to show"))
		return nil
	}

	logs := []terminal.Log{terminal.NewTableLog(
		fmt.Sprintf("Showing page %d of %d (%d events)", page.Page+1, page.TotalPages, page.TotalElements),
		tableHeaders,
		tableRows(page.Content)...,
	)}

	if !page.Last {
		logs = append(logs, terminal.NewFollowupLog(
			"To see the next page run",
			cli.CommandDisplay("audit list", cmd.inputs.args(page.Page+2)),
		))
	}

	ui.Print(logs...)
	return nil
}

func (i *listInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.page < 1 {
		return errInvalidPage
	}
	if i.size < 1 || i.size > maxPageSize {
		return errInvalidPageSize
	}
	return i.filterInputs.validate()
}

func (i listInputs) args(page int) []flags.Arg {
	args := i.filterInputs.args()
	if i.user != "" {
		args = append(args, flags.Arg{Name: flagUser, Value: i.user})
	}
	if i.keyword != "" {
		args = append(args, flags.Arg{Name: flagKeyword, Value: i.keyword})
	}
	if i.size != vault.DefaultAuditPageSize {
		args = append(args, flags.Arg{Name: flagSize, Value: i.size})
	}
	return append(args, flags.Arg{Name: flagPage, Value: page})
}

var (
	tableHeaders = []string{headerTime, headerAction, headerResource, headerStatus, headerUser, headerDetails}
)

func tableRows(events []vault.AuditEvent) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(events))
	for _, event := range events {
		rows = append(rows, map[string]interface{}{
			headerTime:     event.CreatedAt,
			headerAction:   event.Action,
			headerResource: resourceDisplay(event),
			headerStatus:   event.Status,
			headerUser:     event.UserID,
			headerDetails:  event.Description,
		})
	}
	return rows
}

func resourceDisplay(event vault.AuditEvent) string {
	if event.ResourceID == "" {
		return event.ResourceType.String()
	}
	return event.ResourceType.String() + " " + event.ResourceID
}
