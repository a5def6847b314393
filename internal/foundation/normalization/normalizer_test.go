package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test enums for testing
type TestEnum string

const (
	TestEnumAlpha TestEnum = "alpha"
	TestEnumBeta  TestEnum = "beta"
	TestEnumGamma TestEnum = "gamma"
)

func newTestEnum() *Enum[TestEnum] {
	return NewEnum("test.mode", TestEnumAlpha, TestEnumGamma, TestEnumAlpha, TestEnumBeta)
}

func TestEnum_Lookup(t *testing.T) {
	e := newTestEnum()

	tests := []struct {
		name     string
		input    string
		expected TestEnum
		ok       bool
	}{
		{"exact match", "alpha", TestEnumAlpha, true},
		{"case insensitive", "ALPHA", TestEnumAlpha, true},
		{"with spaces", "  beta  ", TestEnumBeta, true},
		{"mixed case spaces", "  GaMmA  ", TestEnumGamma, true},
		{"invalid input", "invalid", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Lookup(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEnum_Resolve(t *testing.T) {
	e := newTestEnum()

	v, warn := e.Resolve("beta")
	assert.Equal(t, TestEnumBeta, v)
	assert.Empty(t, warn)

	v, warn = e.Resolve("  BETA ")
	assert.Equal(t, TestEnumBeta, v)
	assert.Equal(t, "normalized test.mode from '  BETA ' to 'beta'", warn)

	v, warn = e.Resolve("delta")
	assert.Equal(t, TestEnumAlpha, v)
	assert.Equal(t, "unknown test.mode 'delta', defaulting to alpha (valid: alpha, beta, gamma)", warn)

	v, warn = e.Resolve("   ")
	assert.Equal(t, TestEnumAlpha, v)
	assert.Empty(t, warn)
}

func TestEnum_ValidKeysSorted(t *testing.T) {
	e := newTestEnum()

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, e.ValidKeys())
	assert.True(t, e.IsValid(TestEnumGamma))
	assert.False(t, e.IsValid("GAMMA"))
	assert.Equal(t, TestEnumAlpha, e.Default())
}
