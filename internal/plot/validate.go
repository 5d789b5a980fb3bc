package plot

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDomain validates raw domain bounds. Both must parse as real numbers
// with low strictly below high.
func ParseDomain(low, high string) (Domain, error) {
	lo, err := strconv.ParseFloat(strings.TrimSpace(low), 64)
	if err != nil {
		return Domain{}, fmt.Errorf("%w: x-min %q is not a number", ErrInvalidDomain, low)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(high), 64)
	if err != nil {
		return Domain{}, fmt.Errorf("%w: x-max %q is not a number", ErrInvalidDomain, high)
	}
	return NewDomain(lo, hi)
}

// NewDomain checks the ordering invariant low < high.
func NewDomain(low, high float64) (Domain, error) {
	if low >= high {
		return Domain{}, fmt.Errorf("%w: x-min %g must be below x-max %g", ErrInvalidDomain, low, high)
	}
	return Domain{Low: low, High: high}, nil
}

// ValidateOptions checks the presentation fields. Labels and color must be
// non-empty; their content is passed through to LaTeX unvalidated.
func ValidateOptions(o Options) error {
	if strings.TrimSpace(o.XLabel) == "" {
		return fmt.Errorf("%w: x label is empty", ErrInvalidOption)
	}
	if strings.TrimSpace(o.YLabel) == "" {
		return fmt.Errorf("%w: y label is empty", ErrInvalidOption)
	}
	if strings.TrimSpace(o.Color) == "" {
		return fmt.Errorf("%w: color is empty", ErrInvalidOption)
	}
	if o.Samples < 2 {
		return fmt.Errorf("%w: samples %d is below 2", ErrInvalidOption, o.Samples)
	}
	return nil
}
