package flags

import (
	"fmt"
	"time"
)

const (
	dateFormatTZ = "2006-01-02T15:04:05.000-0700"
)

// set of accepted date layouts, most precise first
var dateLayouts = []string{
	dateFormatTZ,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04-0700",
	"2006-01-02T15:04",
	"2006-01-02T15-0700",
	"2006-01-02T15",
	"2006-01-02-0700",
	"2006-01-02",
}

// Date is a date flag
type Date struct {
	Time time.Time
}

// Type returns the date flag type
func (d Date) Type() string {
	return "Date"
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateFormatTZ)
}

// Set parses the date value
func (d *Date) Set(val string) error {
	t, err := parseTime(val)
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

func parseTime(val string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date string: %s", val)
}
