package core

// Cost and revenue coefficients of the daily operating model.
const (
	baseElecKwh        = 120.0
	elecPerStressPoint = 1.8
	longevityElecKwh   = 50.0
	baseWaterL         = 750.0
	waterPerProteinG   = 6.2
	chemPerProbiotic   = 0.5
	chemPerTurmericG   = 0.3
	baseVetCost        = 2800.0
	vetSavingPerStress = 22.0
	longevityVetCost   = 1400.0
	tariffPerKwh       = 9.0
	tariffPerLiter     = 0.7
	costPerChemUnit    = 45.0
	dailyLayRate       = 0.15
	revenuePerEgg      = 25.0
	baseDailyRevenue   = 600.0
	percent            = 100.0
)

// ComputeEconomics derives the daily operating cost, revenue and margin from
// the slider inputs and the current designer-egg stock. It has no hidden state
// and applies no clamping: vet costs and net profit may be negative.
func ComputeEconomics(in SliderInputs, eggInventory float64) EconomicsReport {
	stress := float64(in.StressIdx)

	elecKwh := baseElecKwh + stress*elecPerStressPoint
	vetCosts := baseVetCost - stress*vetSavingPerStress
	if in.LongevityMode {
		elecKwh += longevityElecKwh
		vetCosts += longevityVetCost
	}
	waterL := baseWaterL + float64(in.HighProtFeed)*waterPerProteinG
	chemUnits := float64(in.ProbioticsV)*chemPerProbiotic + float64(in.TurmericG)*chemPerTurmericG

	dailyBurn := elecKwh*tariffPerKwh + waterL*tariffPerLiter + chemUnits*costPerChemUnit + vetCosts
	dailyRev := eggInventory*dailyLayRate*revenuePerEgg + baseDailyRevenue
	netProfit := dailyRev - dailyBurn

	var margin float64
	if dailyRev > 0 {
		margin = netProfit / dailyRev * percent
	}

	return EconomicsReport{
		ElecKwh:   elecKwh,
		WaterL:    waterL,
		ChemUnits: chemUnits,
		VetCosts:  vetCosts,
		DailyBurn: dailyBurn,
		DailyRev:  dailyRev,
		NetProfit: netProfit,
		Margin:    margin,
	}
}
