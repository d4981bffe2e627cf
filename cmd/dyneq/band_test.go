package main

import (
	"testing"

	"github.com/cwbudde/algo-dyneq/dsp/filter/design"
)

func TestParseBand(t *testing.T) {
	tests := []struct {
		in   string
		want band
	}{
		{"peak:1000", band{typ: design.Peak, freq: 1000, q: 0.707, order: 2}},
		{"lp:250:0:0.5:4", band{typ: design.LowPass, freq: 250, q: 0.5, order: 4}},
		{"HighShelf:8000:-3", band{typ: design.HighShelf, freq: 8000, gain: -3, q: 0.707, order: 2}},
		{"tilt:1200:6:0.707:1", band{typ: design.TiltShelf, freq: 1200, gain: 6, q: 0.707, order: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBand(tt.in)
			if err != nil {
				t.Fatalf("parseBand: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseBandErrors(t *testing.T) {
	for _, in := range []string{
		"peak",
		"peak:1:2:3:4:5",
		"allpass:1000",
		"peak:abc",
		"peak:1000:x",
		"peak:1000:0:0.7:two",
		"peak:-5",
	} {
		if _, err := parseBand(in); err == nil {
			t.Errorf("parseBand(%q): expected error", in)
		}
	}
}

func TestParseBandsStopsAtFirstError(t *testing.T) {
	if _, err := parseBands([]string{"peak:1000", "bogus:1"}); err == nil {
		t.Fatal("expected error")
	}
	bands, err := parseBands([]string{"peak:1000", "notch:60:0:10"})
	if err != nil || len(bands) != 2 {
		t.Fatalf("got %v, %v", bands, err)
	}
}

func TestBandStringRoundTrip(t *testing.T) {
	b := band{typ: design.BandPass, freq: 440, gain: 0, q: 3, order: 4}
	got, err := parseBand(b.String())
	if err != nil || got != b {
		t.Fatalf("parseBand(%q) = %+v, %v", b.String(), got, err)
	}
}
