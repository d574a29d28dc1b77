package contract

import (
	"time"

	"github.com/huangsam/readiness/schema"
	"github.com/stretchr/testify/mock"
)

// MockResultWriter is a mock implementation of ResultWriter for testing.
type MockResultWriter struct {
	mock.Mock
}

var _ ResultWriter = &MockResultWriter{} // Compile-time check

// WriteAssessment implements the ResultWriter interface.
func (m *MockResultWriter) WriteAssessment(a *schema.Assessment, cfg *Config, duration time.Duration) error {
	args := m.Called(a, cfg, duration)
	return args.Error(0)
}

// WriteBatch implements the ResultWriter interface.
func (m *MockResultWriter) WriteBatch(result *schema.BatchResult, cfg *Config, duration time.Duration) error {
	args := m.Called(result, cfg, duration)
	return args.Error(0)
}

// WriteCheck implements the ResultWriter interface.
func (m *MockResultWriter) WriteCheck(result *schema.CheckResult, cfg *Config, duration time.Duration) error {
	args := m.Called(result, cfg, duration)
	return args.Error(0)
}

// WriteRubric implements the ResultWriter interface.
func (m *MockResultWriter) WriteRubric(r *schema.Rubric, warnings []string, cfg *Config) error {
	args := m.Called(r, warnings, cfg)
	return args.Error(0)
}
