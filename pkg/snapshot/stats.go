package snapshot

// Stats carries the running totals for a collection pass. RowsProcessed
// counts every physical row read, including skips, so file-level
// statistics stay honest even though skipped rows never reach the
// reconciler.
type Stats struct {
	FilesProcessed int `json:"files_processed" yaml:"files_processed"`
	RowsProcessed  int `json:"rows_processed" yaml:"rows_processed"`
	RowsSkipped    int `json:"rows_skipped" yaml:"rows_skipped"`

	// SkippedByReason breaks RowsSkipped down for the final report.
	SkippedByReason map[SkipReason]int `json:"skipped_by_reason,omitempty" yaml:"skipped_by_reason,omitempty"`
}

func (s *Stats) skip(reason SkipReason) {
	s.RowsSkipped++
	if s.SkippedByReason == nil {
		s.SkippedByReason = map[SkipReason]int{}
	}
	s.SkippedByReason[reason]++
}

// RowsWithNumber is the count of rows that carried a usable number:
// everything processed minus everything skipped. This is the quantity
// the reconcile accounting identity is stated against.
func (s Stats) RowsWithNumber() int {
	return s.RowsProcessed - s.RowsSkipped
}
