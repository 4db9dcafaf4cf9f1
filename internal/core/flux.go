package core

import (
	"iter"
	"math"
)

// FluxSamples is the number of points in the circadian series.
const FluxSamples = 100

const (
	fluxSpanHours = 24.0

	immunityBase         = 60.0
	immunityPerTurmericG = 1.3
	immunityPerProbiotic = 0.1
	longevityBoost       = 10.0
	stressBase           = 40.0
	stressPerIndexPoint  = 0.28
	locomotionBase       = 50.0
	locomotionPerOmega   = 1.5
	feedingBase          = 60.0
	feedingPerProteinG   = 0.2
	longevityBase        = 80.0
)

// fluxHour returns the i-th of FluxSamples evenly spaced hours over [0,24],
// with the last sample pinned to exactly 24.
func fluxHour(i int) float64 {
	if i == FluxSamples-1 {
		return fluxSpanHours
	}
	return float64(i) * (fluxSpanHours / float64(FluxSamples-1))
}

// BiologicalFlux returns the lazily computed 24-hour physiological series for
// the given inputs. The sequence is finite and may be ranged over repeatedly;
// every pass recomputes identical values.
func BiologicalFlux(in SliderInputs) iter.Seq[FluxSample] {
	longevity := 0.0
	if in.LongevityMode {
		longevity = longevityBoost
	}
	immunity := immunityBase + float64(in.TurmericG)*immunityPerTurmericG + float64(in.ProbioticsV)*immunityPerProbiotic + longevity
	stress := stressBase - float64(in.StressIdx)*stressPerIndexPoint
	locomotion := locomotionBase + float64(in.OmegaSupp)*locomotionPerOmega
	feeding := feedingBase + float64(in.HighProtFeed)*feedingPerProteinG
	longevityIdx := longevityBase + longevity

	return func(yield func(FluxSample) bool) {
		for i := 0; i < FluxSamples; i++ {
			t := fluxHour(i)
			sample := FluxSample{
				Hour: t,
				Readings: FluxReadings{
					Immunity:   math.Sin(t/4)*5 + immunity,
					Stress:     math.Cos(t/4)*4 + stress,
					Locomotion: math.Sin(t/6)*12 + locomotion,
					Feeding:    math.Sin(t/3)*15 + feeding,
					Longevity:  longevityIdx,
				},
			}
			if !yield(sample) {
				return
			}
		}
	}
}

// CollectFlux materializes the series for callers that need random access.
func CollectFlux(in SliderInputs) []FluxSample {
	out := make([]FluxSample, 0, FluxSamples)
	for s := range BiologicalFlux(in) {
		out = append(out, s)
	}
	return out
}
