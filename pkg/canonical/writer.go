package canonical

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/civicdata/goldenrecord/pkg/constants"
	"github.com/civicdata/goldenrecord/pkg/errors"
	"github.com/civicdata/goldenrecord/pkg/order"
)

// Write serializes the canonical set to a fixed-column CSV at path. The
// column set is schema-stable: exactly order.Columns(), so internal
// metadata (snapshot dates, source paths, skip reasons) never leaks into
// the output. The write is atomic — a temp file in the destination
// directory, synced, then renamed into place — so a cancelled run never
// leaves a partial canonical file.
func Write(path string, observations []order.Observation) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "canonical_*.csv")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpPath)
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(order.Columns()); err != nil {
		return errors.WrapIO("write", tmpPath, err)
	}
	for _, ob := range observations {
		if err := w.Write(ob.Order.Record()); err != nil {
			return errors.WrapIO("write", tmpPath, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", tmpPath, err)
	}

	if err := tmp.Sync(); err != nil {
		return errors.WrapIO("sync", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// Read loads a canonical CSV back into orders. Used by the standalone
// validate and verify commands, which operate on an already-written
// canonical file rather than re-running the pipeline.
func Read(path string) ([]order.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var orders []order.Order
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		orders = append(orders, order.FromRecord(record, index))
	}
	return orders, nil
}
