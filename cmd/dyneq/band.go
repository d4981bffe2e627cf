package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dyneq/dsp/filter/design"
	"github.com/cwbudde/algo-dyneq/dsp/filter/ideal"
)

// band is one parsed --band value: type:freq[:gain[:q[:order]]].
type band struct {
	typ   design.FilterType
	freq  float64
	gain  float64
	q     float64
	order int
}

func (b band) String() string {
	return fmt.Sprintf("%s:%g:%g:%g:%d", b.typ, b.freq, b.gain, b.q, b.order)
}

func parseBand(s string) (band, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 5 {
		return band{}, fmt.Errorf("band %q: want type:freq[:gain[:q[:order]]]", s)
	}

	typ, err := design.ParseFilterType(parts[0])
	if err != nil {
		return band{}, fmt.Errorf("band %q: %w", s, err)
	}

	b := band{typ: typ, q: 0.707, order: 2}

	floats := []*float64{&b.freq, &b.gain, &b.q}
	for i, p := range parts[1:min(len(parts), 4)] {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return band{}, fmt.Errorf("band %q: field %d: %w", s, i+2, err)
		}
		*floats[i] = v
	}

	if len(parts) == 5 {
		order, err := strconv.Atoi(parts[4])
		if err != nil {
			return band{}, fmt.Errorf("band %q: order: %w", s, err)
		}
		b.order = order
	}

	if b.freq <= 0 {
		return band{}, fmt.Errorf("band %q: frequency must be > 0", s)
	}

	return b, nil
}

func parseBands(specs []string) ([]band, error) {
	bands := make([]band, 0, len(specs))
	for _, s := range specs {
		b, err := parseBand(s)
		if err != nil {
			return nil, err
		}
		bands = append(bands, b)
	}
	return bands, nil
}

// newBandFilter returns a filter configured for b and recomputed once.
func newBandFilter(b band, sampleRate float64) (*ideal.Filter, error) {
	f, err := ideal.NewFilter(ideal.WithSampleRate(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("create filter for %s: %w", b, err)
	}
	f.SetFilterType(b.typ)
	f.SetFrequency(b.freq)
	f.SetGain(b.gain)
	f.SetQ(b.q)
	f.SetOrder(b.order)
	return f, nil
}
