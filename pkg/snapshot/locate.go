// Package snapshot discovers and reads raw registry snapshot files. A
// snapshot is one scrape of the purchase-order registry at a point in
// time; the package derives a calendar date for each file, parses rows
// permissively, and accumulates per-number observation lists in strict
// chronological order for the reconciler.
package snapshot

import (
	"os"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/logging"
)

// File is one located snapshot file with its derived ordering date.
type File struct {
	Path string    `json:"path" yaml:"path"`
	Date time.Time `json:"date" yaml:"date"`
}

// pathDatePattern matches a YYYY/MM/DD triple embedded in a storage path.
// Accepts slash, dash, and hive-style date= partition segments, so
// "raw/2024/01/15/scrape.csv", "raw/2024-01-15.csv", and
// "raw/date=2024-01-15/scrape.csv" all carry their own date.
var pathDatePattern = regexp.MustCompile(`(20\d{2})[/\-](\d{2})[/\-](\d{2})`)

// Locate expands a glob pattern (doublestar syntax, so ** recurses) and
// returns the matched snapshot files sorted ascending by derived date,
// ties broken by path. The date comes from the path when one is embedded,
// otherwise from the file's modification time. A pattern matching zero
// files is the one fatal error in the pipeline: there is nothing to
// reconcile.
func Locate(pattern string) ([]File, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, &errors.ValidationError{
			Field:   "pattern",
			Value:   pattern,
			Message: "invalid glob pattern: " + err.Error(),
		}
	}
	if len(matches) == 0 {
		return nil, errors.NewNoSnapshotsError(pattern)
	}

	files := make([]File, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			logging.Warn().Str("path", path).Err(err).Msg("Skipping unreadable snapshot file")
			continue
		}
		if info.IsDir() {
			continue
		}
		files = append(files, File{Path: path, Date: deriveDate(path, info.ModTime())})
	}
	if len(files) == 0 {
		return nil, errors.NewNoSnapshotsError(pattern)
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].Date.Equal(files[j].Date) {
			return files[i].Date.Before(files[j].Date)
		}
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// deriveDate extracts a calendar date embedded in the path, falling back
// to the file's modification time when the path carries none.
func deriveDate(path string, modTime time.Time) time.Time {
	m := pathDatePattern.FindStringSubmatch(path)
	if m == nil {
		return modTime
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return modTime
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
