package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-leave-tracker/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeave(row rowScanner) (models.LeaveRequest, error) {
	var leave models.LeaveRequest
	err := row.Scan(
		&leave.ID,
		&leave.Name,
		&leave.StartDate,
		&leave.EndDate,
		&leave.Reason,
		timestamp{&leave.CreatedAt},
	)
	return leave, err
}

// timestamp scans native timestamps (postgres) and RFC 3339 text (sqlite).
type timestamp struct {
	t *time.Time
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (ts timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}
