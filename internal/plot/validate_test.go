package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomain(t *testing.T) {
	domain, err := ParseDomain("-5", "5")
	require.NoError(t, err)
	assert.Equal(t, Domain{Low: -5, High: 5}, domain)

	domain, err = ParseDomain(" -1.5 ", " 2.25 ")
	require.NoError(t, err)
	assert.Equal(t, Domain{Low: -1.5, High: 2.25}, domain)
}

func TestParseDomainRejected(t *testing.T) {
	tests := []struct {
		name      string
		low, high string
	}{
		{"reversed", "5", "1"},
		{"equal", "2", "2"},
		{"low not numeric", "abc", "5"},
		{"high not numeric", "-5", "x"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDomain(tt.low, tt.high)
			assert.ErrorIs(t, err, ErrInvalidDomain)
		})
	}
}

func TestValidateOptions(t *testing.T) {
	valid := Options{XLabel: "x", YLabel: "y", Color: "blue", Samples: 200}
	assert.NoError(t, ValidateOptions(valid))

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"empty x label", func(o *Options) { o.XLabel = "" }},
		{"blank y label", func(o *Options) { o.YLabel = "   " }},
		{"empty color", func(o *Options) { o.Color = "" }},
		{"one sample", func(o *Options) { o.Samples = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			assert.ErrorIs(t, ValidateOptions(opts), ErrInvalidOption)
		})
	}
}
