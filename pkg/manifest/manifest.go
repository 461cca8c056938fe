// Package manifest declares multiple datasets for one consolidation run.
// Operators scraping several registries (or several years of one
// registry) keep the per-dataset paths in a single YAML file instead of
// repeating flags per invocation.
package manifest

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/civicdata/goldenrecord/pkg/errors"
)

// Dataset is one declared dataset: where its snapshots live and where
// its outputs go.
type Dataset struct {
	// Name identifies the dataset in logs and reports. Required, unique.
	Name string `yaml:"name" json:"name"`

	// Snapshots is the glob pattern for raw snapshot files. Required.
	Snapshots string `yaml:"snapshots" json:"snapshots"`

	// Allowlist is the optional recurring-number CSV.
	Allowlist string `yaml:"allowlist,omitempty" json:"allowlist,omitempty"`

	// Canonical is the output CSV path. Defaults next to the manifest.
	Canonical string `yaml:"canonical,omitempty" json:"canonical,omitempty"`

	// Validation is the validation record path.
	Validation string `yaml:"validation,omitempty" json:"validation,omitempty"`

	// OracleURL points at the live-count endpoint. Empty disables
	// validation for this dataset.
	OracleURL string `yaml:"oracle_url,omitempty" json:"oracle_url,omitempty"`

	// Policy names the keep/drop policy; empty means latest-wins.
	Policy string `yaml:"policy,omitempty" json:"policy,omitempty"`
}

// Manifest is the parsed dataset declaration file.
type Manifest struct {
	Datasets []Dataset `yaml:"datasets" json:"datasets"`
}

// Load reads and validates a manifest YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(data)
}

// Parse unmarshals and validates manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("yaml", "manifest", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the declaration invariants: at least one dataset,
// unique non-empty names, a snapshots glob per dataset, and a resolvable
// policy name where one is set.
func (m *Manifest) Validate() error {
	if len(m.Datasets) == 0 {
		return errors.NewValidationError("datasets", nil, "manifest declares no datasets")
	}
	seen := make(map[string]bool, len(m.Datasets))
	for i, ds := range m.Datasets {
		if ds.Name == "" {
			return errors.NewValidationError("name", i, "dataset name is required")
		}
		if seen[ds.Name] {
			return errors.NewValidationError("name", ds.Name, "dataset name is duplicated")
		}
		seen[ds.Name] = true
		if ds.Snapshots == "" {
			return errors.NewValidationError("snapshots", ds.Name, "snapshots glob is required")
		}
		if !validPolicy(ds.Policy) {
			return errors.NewValidationError("policy", ds.Policy, "unknown policy name")
		}
	}
	return nil
}

func validPolicy(name string) bool {
	switch name {
	case "", "latest-wins", "first-seen":
		return true
	}
	return false
}
