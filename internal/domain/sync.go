package domain

import "time"

// ArchiveStats holds statistics about an archive run.
type ArchiveStats struct {
	Listed   int
	Archived int
	Skipped  int
	Duration time.Duration
}
