package core

import (
	"math"
	"testing"
)

func TestFluxSampling(t *testing.T) {
	in := SliderInputs{TurmericG: 10, ProbioticsV: 50, HighProtFeed: 25, OmegaSupp: 5, StressIdx: 85}
	samples := CollectFlux(in)
	if len(samples) != FluxSamples {
		t.Fatalf("expected %d samples, got %d", FluxSamples, len(samples))
	}
	if samples[0].Hour != 0 || samples[FluxSamples-1].Hour != 24 {
		t.Fatalf("series must span [0,24], got [%v,%v]", samples[0].Hour, samples[FluxSamples-1].Hour)
	}
	step := 24.0 / 99
	for i := 1; i < len(samples); i++ {
		if d := samples[i].Hour - samples[i-1].Hour; math.Abs(d-step) > 1e-9 {
			t.Fatalf("uneven spacing at %d: %v", i, d)
		}
	}
}

func TestFluxReadings(t *testing.T) {
	in := SliderInputs{TurmericG: 10, ProbioticsV: 50, HighProtFeed: 25, OmegaSupp: 5, StressIdx: 85}
	first := CollectFlux(in)[0]
	// At t=0 the sine terms vanish and the cosine term is 1.
	if !near(first.Readings.Immunity, 60+13+5) {
		t.Fatalf("immunity(0) = %v", first.Readings.Immunity)
	}
	if !near(first.Readings.Stress, 40-85*0.28+4) {
		t.Fatalf("stress(0) = %v", first.Readings.Stress)
	}
	if !near(first.Readings.Locomotion, 57.5) || !near(first.Readings.Feeding, 65) {
		t.Fatalf("unexpected readings %+v", first.Readings)
	}
	for _, longevity := range []bool{false, true} {
		in.LongevityMode = longevity
		want := 80.0
		if longevity {
			want = 90
		}
		for s := range BiologicalFlux(in) {
			if s.Readings.Longevity != want {
				t.Fatalf("longevity(%v) = %v, want constant %v", s.Hour, s.Readings.Longevity, want)
			}
		}
	}
}

func TestFluxLongevityRaisesImmunity(t *testing.T) {
	base := CollectFlux(SliderInputs{})
	boosted := CollectFlux(SliderInputs{LongevityMode: true})
	for i := range base {
		if !near(boosted[i].Readings.Immunity-base[i].Readings.Immunity, 10) {
			t.Fatalf("sample %d: longevity boost = %v", i, boosted[i].Readings.Immunity-base[i].Readings.Immunity)
		}
	}
}

func TestFluxEarlyStopAndReplay(t *testing.T) {
	seq := BiologicalFlux(SliderInputs{OmegaSupp: 3})
	n := 0
	for range seq {
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Fatalf("expected early stop at 10, got %d", n)
	}
	var a, b []FluxSample
	for s := range seq {
		a = append(a, s)
	}
	for s := range seq {
		b = append(b, s)
	}
	if len(a) != FluxSamples || len(b) != FluxSamples || a[57] != b[57] {
		t.Fatalf("sequence is not replayable")
	}
}
