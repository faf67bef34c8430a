package vault

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/deomiarn/securevault/internal/utils/api"
)

const (
	auditEventsPath       = "/audit/events"
	auditEventsExportPath = auditEventsPath + "/export/csv"

	// DefaultAuditPageSize is the number of audit events returned per page
	DefaultAuditPageSize = 20

	auditDateFormat = "2006-01-02T15:04:05"
)

// AuditEvent is a recorded SecureVault audit event
type AuditEvent struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Action       AuditAction  `json:"action"`
	ResourceType ResourceType `json:"resourceType"`
	ResourceID   string       `json:"resourceId,omitempty"`
	Description  string       `json:"description,omitempty"`
	IPAddress    string       `json:"ipAddress,omitempty"`
	UserAgent    string       `json:"userAgent,omitempty"`
	Status       EventStatus  `json:"status"`
	Metadata     string       `json:"metadata,omitempty"`
	CreatedAt    string       `json:"createdAt"`
}

// AuditEventsPage is a single page of audit events
type AuditEventsPage struct {
	Content       []AuditEvent `json:"content"`
	Page          int          `json:"page"`
	Size          int          `json:"size"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	Last          bool         `json:"last"`
}

// AuditFilter narrows down the audit events to find, where zero values are ignored
type AuditFilter struct {
	UserID       string
	Action       AuditAction
	ResourceType ResourceType
	Status       EventStatus
	From         time.Time
	To           time.Time
	Keyword      string
	Page         int
	Size         int
}

func (f AuditFilter) query() map[string]string {
	size := f.Size
	if size <= 0 {
		size = DefaultAuditPageSize
	}

	query := f.exportQuery()
	query["userId"] = f.UserID
	query["keyword"] = f.Keyword
	query["page"] = strconv.Itoa(f.Page)
	query["size"] = strconv.Itoa(size)
	return query
}

func (f AuditFilter) exportQuery() map[string]string {
	return map[string]string{
		"action":       f.Action.String(),
		"resourceType": f.ResourceType.String(),
		"status":       f.Status.String(),
		"fromDate":     formatAuditDate(f.From),
		"toDate":       formatAuditDate(f.To),
	}
}

func formatAuditDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(auditDateFormat)
}

func (c *client) AuditEvents(filter AuditFilter) (AuditEventsPage, error) {
	res, err := c.do(http.MethodGet, auditEventsPath, api.RequestOptions{Query: filter.query()})
	if err != nil {
		return AuditEventsPage{}, err
	}

	var page AuditEventsPage
	if err := decodeJSON(res, &page); err != nil {
		return AuditEventsPage{}, err
	}
	return page, nil
}

// ExportAuditEvents streams the matching audit events as CSV
// The caller is responsible for closing the returned reader
func (c *client) ExportAuditEvents(filter AuditFilter) (io.ReadCloser, error) {
	res, err := c.do(http.MethodGet, auditEventsExportPath, api.RequestOptions{Query: filter.exportQuery()})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}
