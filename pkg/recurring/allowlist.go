// Package recurring loads the allowlist of purchase-order numbers that are
// known to legitimately recur. The issuing system reuses a number when an
// order is re-issued or split, so those numbers may keep more than one
// canonical row. Everything else collapses to a single row.
package recurring

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/civicdata/goldenrecord/pkg/errors"
)

// Entry is one allowlist row: a number and how many concurrently
// legitimate copies of it may exist.
type Entry struct {
	Number string `json:"po_number" yaml:"po_number"`
	Count  int    `json:"duplicate_count" yaml:"duplicate_count"`
}

// Allowlist maps purchase-order numbers to their allowed duplicate count.
// It is immutable once loaded; a run never mutates it.
type Allowlist struct {
	entries map[string]int
}

// Empty returns an allowlist with no entries. Used when the allowlist file
// is missing or unreadable, which degrades every number to non-exceptional.
func Empty() *Allowlist {
	return &Allowlist{entries: map[string]int{}}
}

// Load reads an allowlist CSV. The file needs an identifier column and a
// duplicate-count column; headers are matched case- and space-insensitively
// so both "identifier" and "Duplicate Count" and their snake_case forms
// work. Rows with a blank number, an unparsable count, or a count of zero
// or less are dropped. Callers treat any returned error as advisory: log a
// warning and continue with Empty().
func Load(path string) (*Allowlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	return list, nil
}

// Parse reads allowlist rows from r. Split from Load so tests and callers
// holding an already-open source can use it directly.
func Parse(r io.Reader) (*Allowlist, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Empty(), nil
	}
	if err != nil {
		return nil, err
	}

	numberCol, countCol := -1, -1
	for i, name := range header {
		switch normalizeHeader(name) {
		case "identifier", "po_number", "number":
			if numberCol < 0 {
				numberCol = i
			}
		case "duplicate_count", "allowed_count", "allowed_duplicates":
			if countCol < 0 {
				countCol = i
			}
		}
	}
	if numberCol < 0 || countCol < 0 {
		return nil, &errors.ValidationError{
			Field:   "header",
			Value:   strings.Join(header, ","),
			Message: "identifier and duplicate-count columns are required",
		}
	}

	entries := map[string]int{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if numberCol >= len(record) || countCol >= len(record) {
			continue
		}

		number := strings.TrimSpace(record[numberCol])
		if number == "" {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(record[countCol]))
		if err != nil || count <= 0 {
			continue
		}
		entries[number] = count
	}

	return &Allowlist{entries: entries}, nil
}

// Allowance returns the allowed duplicate count for a number and whether
// the number is on the list.
func (a *Allowlist) Allowance(number string) (int, bool) {
	if a == nil {
		return 0, false
	}
	count, ok := a.entries[number]
	return count, ok
}

// Size returns the number of allowlisted numbers.
func (a *Allowlist) Size() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// Entries returns the allowlist rows sorted by number.
func (a *Allowlist) Entries() []Entry {
	if a == nil {
		return nil
	}
	entries := make([]Entry, 0, len(a.entries))
	for number, count := range a.entries {
		entries = append(entries, Entry{Number: number, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Number < entries[j].Number
	})
	return entries
}

// normalizeHeader lowercases a header cell and collapses runs of
// non-alphanumeric characters to single underscores, so "Duplicate Count",
// "duplicate_count", and "Duplicate-Count" all match. A UTF-8 BOM on the
// first cell is stripped.
func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\uFEFF")
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
