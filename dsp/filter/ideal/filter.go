package ideal

import (
	"math"

	"github.com/cwbudde/algo-dyneq/dsp/core"
	"github.com/cwbudde/algo-dyneq/dsp/filter/biquad"
	"github.com/cwbudde/algo-dyneq/dsp/filter/design"
	"github.com/cwbudde/algo-dyneq/dsp/param"
)

// MaxSections is the largest cascade a Filter can hold.
const MaxSections = 16

const (
	defaultFrequency  = 1000.0
	defaultGainDB     = 0.0
	defaultQ          = 0.707
	defaultFilterType = design.Peak
	defaultOrder      = 2
	defaultSampleRate = 48000.0

	minFrequency = 1e-3
	minQ         = design.MinQ

	// paramEpsilon debounces gain and Q writes.
	paramEpsilon = 1e-6
)

// Filter is one parametric band: atomic parameters, a fixed-capacity
// coefficient cascade and the cached response buffers derived from it.
//
// Setters and getters may be called from any goroutine. Pull, the update
// methods, DB, AddDecibels and the buffer accessors belong to the single
// consuming goroutine. Resize and Prepare must not overlap evaluation.
type Filter struct {
	frequency  param.Float64
	gain       param.Float64
	q          param.Float64
	filterType param.Enum[design.FilterType]
	order      param.Int
	sampleRate param.Float64
	dirty      *param.Flag

	designer Designer
	capacity int

	sections   [MaxSections]biquad.Coefficients
	active     int
	designRate float64

	response []complex128
	decibels []float64
	scratch  []float64
}

// NewFilter returns a 1 kHz, 0 dB, Q 0.707 second-order peak filter at
// 48 kHz. The first pull designs the cascade.
func NewFilter(opts ...Option) (*Filter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &Filter{
		dirty:      param.NewFlag(),
		designer:   cfg.designer,
		capacity:   cfg.capacity,
		designRate: cfg.sampleRate,
	}
	f.frequency.Store(defaultFrequency)
	f.gain.Store(defaultGainDB)
	f.q.Store(defaultQ)
	f.filterType.Store(defaultFilterType)
	f.order.Store(defaultOrder)
	f.sampleRate.Store(cfg.sampleRate)

	return f, nil
}

// SetFrequency sets the corner or center frequency in Hz, floored at 1 mHz.
func (f *Filter) SetFrequency(hz float64) {
	if !core.IsFinite(hz) {
		return
	}

	f.frequency.Store(math.Max(minFrequency, hz))
	f.dirty.Raise()
}

// Frequency returns the frequency in Hz.
func (f *Filter) Frequency() float64 { return f.frequency.Load() }

// SetGain sets the gain in dB. Changes within 1e-6 dB are ignored.
func (f *Filter) SetGain(dB float64) {
	if !core.IsFinite(dB) {
		return
	}

	if f.gain.StoreIfChanged(dB, paramEpsilon) {
		f.dirty.Raise()
	}
}

// Gain returns the gain in dB.
func (f *Filter) Gain() float64 { return f.gain.Load() }

// SetQ sets the quality factor, floored at 0.025. Changes within 1e-6 are
// ignored.
func (f *Filter) SetQ(q float64) {
	if !core.IsFinite(q) {
		return
	}

	if f.q.StoreIfChanged(math.Max(minQ, q), paramEpsilon) {
		f.dirty.Raise()
	}
}

// Q returns the quality factor.
func (f *Filter) Q() float64 { return f.q.Load() }

// SetFilterType selects the response family. Unknown types are ignored.
func (f *Filter) SetFilterType(t design.FilterType) {
	if !t.Valid() {
		return
	}

	f.filterType.Store(t)
	f.dirty.Raise()
}

// FilterType returns the response family.
func (f *Filter) FilterType() design.FilterType { return f.filterType.Load() }

// SetOrder sets the filter order, floored at 1.
func (f *Filter) SetOrder(order int) {
	f.order.Store(max(1, order))
	f.dirty.Raise()
}

// Order returns the filter order.
func (f *Filter) Order() int { return f.order.Load() }

// SetSampleRate sets the sample rate in Hz. Non-positive or non-finite
// rates are ignored.
func (f *Filter) SetSampleRate(hz float64) {
	if !(hz > 0) || math.IsInf(hz, 0) {
		return
	}

	f.sampleRate.Store(hz)
	f.dirty.Raise()
}

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate.Load() }

// Prepare sets the sample rate and sizes both the response and magnitude
// buffers for n query points. It allocates and must only be called while
// the consumer is idle.
func (f *Filter) Prepare(sampleRate float64, n int) {
	f.SetSampleRate(sampleRate)
	f.ResizeResponse(n)
	f.ResizeMagnitude(n)
}

// Outdated reports whether parameters changed since the last recompute.
func (f *Filter) Outdated() bool { return f.dirty.Pending() }

// Invalidate forces the next pull or update to recompute, for example
// after the caller changed its query points.
func (f *Filter) Invalidate() { f.dirty.Raise() }

// Pull re-designs the cascade if any parameter changed since the last pull
// and reports whether it did. The cached buffers are left untouched.
func (f *Filter) Pull() bool {
	return param.Pull(f.dirty, f.recompute)
}

func (f *Filter) recompute() {
	p := design.Params{
		Freq:       f.frequency.Load(),
		SampleRate: f.sampleRate.Load(),
		GainDB:     f.gain.Load(),
		Q:          f.q.Load(),
		Order:      f.order.Load(),
	}

	n := f.designer.Design(f.sections[:f.capacity], f.filterType.Load(), p)
	f.active = max(0, min(n, f.capacity))
	f.designRate = p.SampleRate
}

// Sections returns the active cascade from the last recompute. The slice
// aliases internal storage and is valid until the next recompute.
func (f *Filter) Sections() []biquad.Coefficients {
	return f.sections[:f.active]
}

// ActiveSections returns the number of sections in the active cascade.
func (f *Filter) ActiveSections() int { return f.active }

// Capacity returns the configured maximum number of sections.
func (f *Filter) Capacity() int { return f.capacity }
