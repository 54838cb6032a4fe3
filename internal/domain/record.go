package domain

import (
	"fmt"
	"strings"
	"time"
)

// Record is a DNS record as reported by the provider.
type Record struct {
	ID    string
	RR    string // subdomain label, "@" for the apex
	Type  string
	TTL   int64
	Value string
	Meta  map[string]string // provider-specific passthrough fields
}

// RecordChange describes one record whose value was replaced.
type RecordChange struct {
	Domain    string    `json:"domain" db:"domain"`
	RecordID  string    `json:"record_id" db:"record_id"`
	RR        string    `json:"rr" db:"rr"`
	Type      string    `json:"type" db:"type"`
	OldValue  string    `json:"old_value" db:"old_value"`
	NewValue  string    `json:"new_value" db:"new_value"`
	ChangedAt time.Time `json:"changed_at" db:"changed_at"`
}

func (c RecordChange) String() string {
	return fmt.Sprintf("%s.%s %s --> %s", c.RR, c.Domain, c.OldValue, c.NewValue)
}

// SyncReport holds the outcome of one DNS sync.
type SyncReport struct {
	Domain  string
	IP      string
	Checked int
	Changes []RecordChange
}

// Summary renders one line per change, or "" when nothing changed.
func (r *SyncReport) Summary() string {
	var b strings.Builder
	for _, c := range r.Changes {
		b.WriteString(c.String())
		b.WriteString("\n")
	}
	return b.String()
}
