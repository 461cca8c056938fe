package snapshot

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/civicdata/goldenrecord/pkg/constants"
	"github.com/civicdata/goldenrecord/pkg/logging"
	"github.com/civicdata/goldenrecord/pkg/order"
)

// Collector accumulates observations per purchase-order number across a
// run's snapshot files. It is an explicit owned aggregator handed through
// the pipeline, never package-level state. Within each number's list,
// observations sit in strict snapshot-chronological order; numbers are
// remembered in first-seen order so downstream iteration is reproducible.
type Collector struct {
	observations map[string][]order.Observation
	numbers      []string
	stats        Stats
	workers      int
}

// NewCollector returns an empty collector. workers bounds concurrent file
// parsing; zero or less selects the default.
func NewCollector(workers int) *Collector {
	if workers <= 0 {
		workers = constants.MaxParseWorkers
	}
	return &Collector{
		observations: map[string][]order.Observation{},
		workers:      workers,
	}
}

// Collect parses every file and appends observations. Files are parsed
// concurrently for throughput, but results merge back in the strict
// file order Locate produced — parallel read, serial append. A file that
// fails to parse entirely is logged and skipped; the run continues with
// whatever was readable.
func (c *Collector) Collect(ctx context.Context, files []File) error {
	// Read success is tracked explicitly so an empty snapshot still
	// counts as a processed file.
	type parsedFile struct {
		rows []Row
		ok   bool
	}
	parsed := make([]parsedFile, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := ReadRows(file.Path)
			if err != nil {
				logging.Warn().Str("path", file.Path).Err(err).Msg("Skipping unreadable snapshot")
				return nil
			}
			parsed[i] = parsedFile{rows: rows, ok: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, file := range files {
		if !parsed[i].ok {
			continue
		}
		c.appendFile(file, parsed[i].rows)
	}
	return nil
}

// appendFile folds one file's rows into the per-number lists. Serial by
// construction: Collect calls it in file order after all parsing is done.
func (c *Collector) appendFile(file File, rows []Row) {
	c.stats.FilesProcessed++
	for _, row := range rows {
		c.stats.RowsProcessed++
		if row.Skipped {
			c.stats.skip(row.Reason)
			continue
		}
		number := row.Order.Number
		if _, seen := c.observations[number]; !seen {
			c.numbers = append(c.numbers, number)
		}
		c.observations[number] = append(c.observations[number], order.Observation{
			Order:        row.Order,
			SnapshotDate: file.Date,
			Source:       file.Path,
		})
	}
}

// Numbers returns every collected purchase-order number in first-seen
// order.
func (c *Collector) Numbers() []string {
	return c.numbers
}

// Observations returns the chronological observation list for a number.
func (c *Collector) Observations(number string) []order.Observation {
	return c.observations[number]
}

// Stats returns the running file and row totals.
func (c *Collector) Stats() Stats {
	return c.stats
}
