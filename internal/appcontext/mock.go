package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/civicdata/goldenrecord"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ClientFunc            func() (goldenrecord.Client, error)
	ClientWithOptionsFunc func(...goldenrecord.Option) (goldenrecord.Client, error)
	RunOptionsFunc        func() []goldenrecord.Option
	SnapshotsFunc         func() string
	AllowlistPathFunc     func() string
	CanonicalPathFunc     func() string
	ValidationPathFunc    func() string
	OracleURLFunc         func() string
	LoggerFunc            func() *zerolog.Logger
	OutputFormatFunc      func() string
	VersionFunc           func() string
	CommitFunc            func() string
	DateFunc              func() string
	BuiltByFunc           func() string
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client() (goldenrecord.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, nil
}

// ClientWithOptions returns a client using the mock function or nil.
func (m *Mock) ClientWithOptions(opts ...goldenrecord.Option) (goldenrecord.Client, error) {
	if m.ClientWithOptionsFunc != nil {
		return m.ClientWithOptionsFunc(opts...)
	}
	return nil, nil
}

// RunOptions returns options using the mock function or none.
func (m *Mock) RunOptions() []goldenrecord.Option {
	if m.RunOptionsFunc != nil {
		return m.RunOptionsFunc()
	}
	return nil
}

// Snapshots returns the pattern using the mock function or "".
func (m *Mock) Snapshots() string {
	if m.SnapshotsFunc != nil {
		return m.SnapshotsFunc()
	}
	return ""
}

// AllowlistPath returns the path using the mock function or "".
func (m *Mock) AllowlistPath() string {
	if m.AllowlistPathFunc != nil {
		return m.AllowlistPathFunc()
	}
	return ""
}

// CanonicalPath returns the path using the mock function or "".
func (m *Mock) CanonicalPath() string {
	if m.CanonicalPathFunc != nil {
		return m.CanonicalPathFunc()
	}
	return ""
}

// ValidationPath returns the path using the mock function or "".
func (m *Mock) ValidationPath() string {
	if m.ValidationPathFunc != nil {
		return m.ValidationPathFunc()
	}
	return ""
}

// OracleURL returns the URL using the mock function or "".
func (m *Mock) OracleURL() string {
	if m.OracleURLFunc != nil {
		return m.OracleURLFunc()
	}
	return ""
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
