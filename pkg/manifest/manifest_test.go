package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdata/goldenrecord/pkg/manifest"
)

const sampleManifest = `
datasets:
  - name: purchase-orders-2024
    snapshots: "raw/2024/**/*.csv"
    allowlist: config/recurring.csv
    canonical: out/2024/canonical.csv
    validation: out/2024/validation.json
    oracle_url: https://registry.example.gov/api/count
  - name: purchase-orders-2023
    snapshots: "raw/2023/**/*.csv"
    policy: first-seen
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	require.Len(t, m.Datasets, 2)

	first := m.Datasets[0]
	assert.Equal(t, "purchase-orders-2024", first.Name)
	assert.Equal(t, "raw/2024/**/*.csv", first.Snapshots)
	assert.Equal(t, "config/recurring.csv", first.Allowlist)
	assert.Equal(t, "https://registry.example.gov/api/count", first.OracleURL)

	assert.Equal(t, "first-seen", m.Datasets[1].Policy)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no datasets",
			yaml:    "datasets: []\n",
			wantErr: "declares no datasets",
		},
		{
			name:    "missing name",
			yaml:    "datasets:\n  - snapshots: \"raw/**\"\n",
			wantErr: "name is required",
		},
		{
			name:    "duplicate names",
			yaml:    "datasets:\n  - name: a\n    snapshots: \"x/**\"\n  - name: a\n    snapshots: \"y/**\"\n",
			wantErr: "duplicated",
		},
		{
			name:    "missing snapshots",
			yaml:    "datasets:\n  - name: a\n",
			wantErr: "snapshots glob is required",
		},
		{
			name:    "unknown policy",
			yaml:    "datasets:\n  - name: a\n    snapshots: \"x/**\"\n    policy: coin-flip\n",
			wantErr: "unknown policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
