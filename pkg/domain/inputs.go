package domain

// SliderInputs carries the operator-controlled biological inputs read from the
// control surface on every refresh.
type SliderInputs struct {
	TurmericG     int  `json:"turmeric_g" env:"TURMERIC_G" envDefault:"10"`
	ProbioticsV   int  `json:"probiotics_v" env:"PROBIOTICS_V" envDefault:"50"`
	HighProtFeed  int  `json:"high_prot_feed" env:"HIGH_PROT_FEED" envDefault:"25"`
	OmegaSupp     int  `json:"omega_supp" env:"OMEGA_SUPP" envDefault:"5"`
	StressIdx     int  `json:"stress_idx" env:"STRESS_IDX" envDefault:"85"`
	LongevityMode bool `json:"longevity_mode" env:"LONGEVITY_MODE" envDefault:"false"`
}

type sliderBound struct {
	field    string
	value    int
	min, max int
}

// Validate checks every slider against its control range. The economics and
// flux functions do not call it; range enforcement belongs to the caller.
func (in SliderInputs) Validate() error {
	bounds := []sliderBound{
		{"turmeric_g", in.TurmericG, 0, 20},
		{"probiotics_v", in.ProbioticsV, 0, 100},
		{"high_prot_feed", in.HighProtFeed, 0, 50},
		{"omega_supp", in.OmegaSupp, 0, 10},
		{"stress_idx", in.StressIdx, 0, 100},
	}
	for _, b := range bounds {
		if b.value < b.min || b.value > b.max {
			return ValidationError{Field: b.field, Reason: rangeReason(b.min, b.max, b.value)}
		}
	}
	return nil
}

// EconomicsReport is the derived daily operating cost and profitability.
type EconomicsReport struct {
	ElecKwh   float64 `json:"elec_kwh"`
	WaterL    float64 `json:"water_l"`
	ChemUnits float64 `json:"chem_units"`
	VetCosts  float64 `json:"vet_costs"`
	DailyBurn float64 `json:"daily_burn"`
	DailyRev  float64 `json:"daily_rev"`
	NetProfit float64 `json:"net_profit"`
	Margin    float64 `json:"margin_pct"`
}

// Profitable reports whether the day nets a positive result.
func (r EconomicsReport) Profitable() bool { return r.NetProfit > 0 }

// FluxReadings holds the five physiological series values at one instant.
type FluxReadings struct {
	Immunity   float64 `json:"immunity_index"`
	Stress     float64 `json:"stress_level"`
	Locomotion float64 `json:"locomotion_flux"`
	Feeding    float64 `json:"feeding_rate"`
	Longevity  float64 `json:"longevity_index"`
}

// FluxSample is one point of the 24-hour circadian series.
type FluxSample struct {
	Hour     float64      `json:"hour"`
	Readings FluxReadings `json:"readings"`
}
