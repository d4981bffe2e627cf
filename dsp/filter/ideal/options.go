package ideal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-dyneq/dsp/filter/biquad"
	"github.com/cwbudde/algo-dyneq/dsp/filter/design"
)

// Designer fills dst with the cascade for typ and p and returns the number
// of sections written. Implementations must not write beyond len(dst).
type Designer interface {
	Design(dst []biquad.Coefficients, typ design.FilterType, p design.Params) int
}

// DesignerFunc adapts a plain function to [Designer].
type DesignerFunc func(dst []biquad.Coefficients, typ design.FilterType, p design.Params) int

// Design calls f.
func (f DesignerFunc) Design(dst []biquad.Coefficients, typ design.FilterType, p design.Params) int {
	return f(dst, typ, p)
}

// Option mutates filter construction parameters.
type Option func(*config) error

type config struct {
	capacity   int
	designer   Designer
	sampleRate float64
}

func defaultConfig() config {
	return config{
		capacity:   MaxSections,
		designer:   design.DefaultTable(),
		sampleRate: defaultSampleRate,
	}
}

// WithCapacity limits the number of cascade sections to n in [1, MaxSections].
func WithCapacity(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n > MaxSections {
			return fmt.Errorf("ideal: capacity must be in [1, %d]: %d", MaxSections, n)
		}
		cfg.capacity = n
		return nil
	}
}

// WithDesigner replaces the default design table.
func WithDesigner(d Designer) Option {
	return func(cfg *config) error {
		if d == nil {
			return errors.New("ideal: designer must not be nil")
		}
		cfg.designer = d
		return nil
	}
}

// WithSampleRate sets the initial sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
			return fmt.Errorf("ideal: sample rate must be > 0 and finite: %f", sampleRate)
		}
		cfg.sampleRate = sampleRate
		return nil
	}
}
