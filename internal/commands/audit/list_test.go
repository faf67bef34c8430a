package audit

import (
	"strings"
	"testing"
	"time"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/utils/flags"
	"github.com/deomiarn/securevault/internal/utils/test/assert"
	"github.com/deomiarn/securevault/internal/utils/test/mock"
)

var testEvents = []vault.AuditEvent{
	{
		ID:           "e1",
		UserID:       "u-alice",
		Action:       vault.AuditActionSecretCreated,
		ResourceType: vault.ResourceTypeSecret,
		ResourceID:   "s1",
		Description:  "Created secret db-password",
		Status:       vault.EventStatusSuccess,
		CreatedAt:    "2024-03-01T10:00:00",
	},
	{
		ID:           "e2",
		UserID:       "u-bob",
		Action:       vault.AuditActionUserLoginFailed,
		ResourceType: vault.ResourceTypeUser,
		Status:       vault.EventStatusFailure,
		CreatedAt:    "2024-03-01T10:05:00",
	},
}

func TestAuditListHandler(t *testing.T) {
	t.Run("Should print the page of events with a followup for the next page", func(t *testing.T) {
		out, ui := mock.NewUI()

		var capturedFilter vault.AuditFilter
		client := mock.VaultClient{}
		client.AuditEventsFn = func(filter vault.AuditFilter) (vault.AuditEventsPage, error) {
			capturedFilter = filter
			return vault.AuditEventsPage{Content: testEvents, Page: 0, Size: 2, TotalElements: 5, TotalPages: 3}, nil
		}

		cmd := &CommandList{listInputs{
			filterInputs: filterInputs{status: vault.EventStatusFailure},
			keyword:      "db password",
			page:         1,
			size:         2,
		}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: client}))

		assert.Equal(t, vault.AuditFilter{
			Status:  vault.EventStatusFailure,
			Keyword: "db password",
			Page:    0,
			Size:    2,
		}, capturedFilter)
		assert.Equal(t, `Showing page 1 of 3 (5 events)
  Time                 Action             Resource   Status   User     Description
  -------------------  -----------------  ---------  -------  -------  --------------------------
  2024-03-01T10:00:00  SECRET_CREATED     SECRET s1  SUCCESS  u-alice  Created secret db-password
  2024-03-01T10:05:00  USER_LOGIN_FAILED  USER       FAILURE  u-bob
To see the next page run
  vault-cli audit list --status FAILURE --keyword "db password" --size 2 --page 2
`, out.String())
	})

	t.Run("Should not suggest a next page on the last page", func(t *testing.T) {
		out, ui := mock.NewUI()

		client := mock.VaultClient{}
		client.AuditEventsFn = func(filter vault.AuditFilter) (vault.AuditEventsPage, error) {
			return vault.AuditEventsPage{Content: testEvents[:1], Page: 2, TotalElements: 41, TotalPages: 3, Last: true}, nil
		}

		cmd := &CommandList{listInputs{page: 3, size: vault.DefaultAuditPageSize}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: client}))

		assert.Contains(t, out.String(), "Showing page 3 of 3 (41 events)\n")
		assert.False(t, strings.Contains(out.String(), "To see the next page run"), "expected no followup")
	})

	t.Run("Should report when there are no events", func(t *testing.T) {
		out, ui := mock.NewUI()

		client := mock.VaultClient{}
		client.AuditEventsFn = func(filter vault.AuditFilter) (vault.AuditEventsPage, error) {
			return vault.AuditEventsPage{Last: true}, nil
		}

		cmd := &CommandList{listInputs{page: 1, size: vault.DefaultAuditPageSize}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: client}))

		assert.Equal(t, "No audit events to show\n", out.String())
	})
}

func TestAuditListInputs(t *testing.T) {
	from := flags.Date{Time: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)}
	to := flags.Date{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}

	for _, tc := range []struct {
		description string
		inputs      listInputs
		expectedErr error
	}{
		{"Should accept the defaults", listInputs{page: 1, size: vault.DefaultAuditPageSize}, nil},
		{"Should reject a page below 1", listInputs{page: 0, size: 10}, errInvalidPage},
		{"Should reject an empty page size", listInputs{page: 1, size: 0}, errInvalidPageSize},
		{"Should reject an oversized page", listInputs{page: 1, size: maxPageSize + 1}, errInvalidPageSize},
		{"Should reject a date range that ends before it starts", listInputs{filterInputs{from: from, to: to}, "", "", 1, 10}, errInvalidDateRange},
		{"Should accept a date range that is in order", listInputs{filterInputs{from: to, to: from}, "", "", 1, 10}, nil},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expectedErr, tc.inputs.Resolve(nil, nil))
		})
	}
}

func TestAuditListArgs(t *testing.T) {
	inputs := listInputs{
		filterInputs: filterInputs{
			action:       vault.AuditActionSecretRead,
			resourceType: vault.ResourceTypeSecret,
			from:         flags.Date{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
		user: "u-alice",
		size: vault.DefaultAuditPageSize,
	}

	assert.Equal(t,
		"vault-cli audit list --action SECRET_READ --resource-type SECRET --from 2024-03-01T00:00:00.000+0000 --user u-alice --page 4",
		cli.CommandDisplay("audit list", inputs.args(4)),
	)
}
