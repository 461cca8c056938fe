package run_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	runcmd "github.com/civicdata/goldenrecord/cmd/goldenrecord/cmd/run"
	"github.com/civicdata/goldenrecord/internal/appcontext"
)

func writeSnapshot(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestCommand_RunWithFlags(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "2024-03-01.csv",
		"PO Number,Description,Vendor Name,Organization,Department,Buyer,Status,Sent Date,Total\n"+
			"A-1,Paper,Acme,Admin,Ops,Lee,Sent,03/01/2024,$10.00\n")
	writeSnapshot(t, dir, "2024-03-02.csv",
		"PO Number,Description,Vendor Name,Organization,Department,Buyer,Status,Sent Date,Total\n"+
			"A-1,Paper,Acme,Admin,Ops,Lee,Closed,03/01/2024,$10.00\n")

	canonical := filepath.Join(dir, "out", "canonical.csv")

	cmd := runcmd.NewCommand(&appcontext.Mock{})
	cmd.SetArgs([]string{
		"--snapshots", filepath.Join(dir, "*.csv"),
		"--canonical", canonical,
		"--no-validate",
	})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(canonical)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Closed")
	assert.NotContains(t, string(data), "Sent,")
}

func TestCommand_RunWithManifest(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "2024-03-01.csv",
		"PO Number,Description,Vendor Name,Organization,Department,Buyer,Status,Sent Date,Total\n"+
			"B-2,Chairs,Seatco,Admin,Ops,Kim,Sent,03/01/2024,$250.00\n")

	canonical := filepath.Join(dir, "canonical.csv")
	manifest := filepath.Join(dir, "datasets.yaml")
	yaml := fmt.Sprintf(`datasets:
  - name: office-orders
    snapshots: %q
    canonical: %q
`, filepath.Join(dir, "*.csv"), canonical)
	require.NoError(t, os.WriteFile(manifest, []byte(yaml), 0o644))

	cmd := runcmd.NewCommand(&appcontext.Mock{})
	cmd.SetArgs([]string{"--manifest", manifest})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(canonical)
	require.NoError(t, err)
	assert.Contains(t, string(data), "B-2")
}

func TestCommand_RejectsUnknownPolicy(t *testing.T) {
	cmd := runcmd.NewCommand(&appcontext.Mock{})
	cmd.SetArgs([]string{
		"--snapshots", "whatever/*.csv",
		"--policy", "newest-maybe",
	})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown policy")
}
