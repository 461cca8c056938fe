package snapshot

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/order"
)

// SkipReason explains why a physical row produced no order.
type SkipReason string

// Skip reasons recorded in file statistics.
const (
	SkipEmptyNumber SkipReason = "empty_number"
	SkipMalformed   SkipReason = "malformed"
)

// Row is the per-row parse result: either an order or a skip with its
// reason. Making the skip explicit keeps the accounting auditable
// instead of inferred from output cardinality.
type Row struct {
	Order   order.Order
	Line    int
	Skipped bool
	Reason  SkipReason
}

// headerAliases maps normalized header cells to canonical column names.
// The registry's exports have drifted across years; every observed
// spelling of each column lands on the same canonical name.
var headerAliases = map[string]string{
	"po_number":     "po_number",
	"po":            "po_number",
	"number":        "po_number",
	"identifier":    "po_number",
	"description":   "description",
	"desc":          "description",
	"vendor":        "vendor",
	"vendor_name":   "vendor",
	"organization":  "organization",
	"org":           "organization",
	"department":    "department",
	"dept":          "department",
	"buyer":         "buyer",
	"status":        "status",
	"sent_date":     "sent_date",
	"sent":          "sent_date",
	"date_sent":     "sent_date",
	"total":         "total",
	"total_amount":  "total",
	"order_total":   "total",
	"dollars_spent": "total",
}

// ReadRows parses one snapshot file into per-row results. Files ending
// .xlsx go through excelize; everything else is read as CSV. Both paths
// share the same header mapping and row semantics. A readable file
// always yields a non-nil slice, even when it holds no data rows.
func ReadRows(path string) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

// readCSV reads a snapshot CSV permissively: ragged field counts and
// lazy quoting are tolerated, because a malformed row is still usable
// if its known columns parse.
func readCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	index := headerIndex(header)

	rows := []Row{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rows = append(rows, Row{Line: line, Skipped: true, Reason: SkipMalformed})
			continue
		}
		rows = append(rows, buildRow(record, index, line))
	}
	return rows, nil
}

// readXLSX reads the first sheet of a workbook, first row as headers.
// The registry's bulk exports arrive as workbooks; this folds them into
// the same pipeline without a pre-conversion step.
func readXLSX(path string) ([]Row, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return []Row{}, nil
	}
	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	if len(records) == 0 {
		return []Row{}, nil
	}
	index := headerIndex(records[0])

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, buildRow(record, index, i+2))
	}
	return rows, nil
}

// buildRow maps one record through the header index. Rows with an empty
// number are skips, not errors: they cannot be reconciled.
func buildRow(record []string, index map[string]int, line int) Row {
	o := order.FromRecord(record, index)
	o.Number = strings.TrimSpace(o.Number)
	if o.Number == "" {
		return Row{Line: line, Skipped: true, Reason: SkipEmptyNumber}
	}
	return Row{Order: o, Line: line}
}

// headerIndex maps canonical column names to their positions in the
// file's header row. Unknown columns are ignored; missing columns simply
// never appear in the index, which FromRecord treats as empty fields.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		canonical, ok := headerAliases[normalizeHeader(cell)]
		if !ok {
			continue
		}
		if _, taken := index[canonical]; !taken {
			index[canonical] = i
		}
	}
	return index
}

// normalizeHeader lowercases a header cell and collapses runs of
// non-alphanumeric characters to single underscores. A UTF-8 BOM on the
// first cell is stripped.
func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\uFEFF")
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	pendingUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingUnderscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingUnderscore = false
			b.WriteRune(r)
		default:
			pendingUnderscore = true
		}
	}
	return b.String()
}
