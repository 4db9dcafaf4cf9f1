package core

import (
	"fmt"
	"math"
)

// NutrientStatus is the soil test verdict for one nutrient.
type NutrientStatus string

const (
	NutrientBalanced NutrientStatus = "Balanced"
	NutrientSurplus  NutrientStatus = "Surplus"
	NutrientMet      NutrientStatus = "Met"
)

// NutrientGap compares the soil requirement with what the serum programme provides (mg/kg).
type NutrientGap struct {
	Nutrient string         `json:"nutrient"`
	Required float64        `json:"required_mg_kg"`
	Provided float64        `json:"provided_mg_kg"`
	Status   NutrientStatus `json:"status"`
}

// SerumDose is the volume of one serum product for the planned area.
type SerumDose struct {
	Item   string  `json:"item"`
	Liters float64 `json:"liters"`
}

// FertilizerAdvice is the serum plan for a plot.
type FertilizerAdvice struct {
	Acres     float64       `json:"acres"`
	Nutrients []NutrientGap `json:"nutrients"`
	Doses     []SerumDose   `json:"doses"`
}

var soilNutrients = []NutrientGap{
	{"Nitrogen (N)", 280, 278, NutrientBalanced},
	{"Phosphorus (P)", 140, 142, NutrientSurplus},
	{"Potash (K)", 190, 188, NutrientBalanced},
	{"Zinc/Boron (Zn/B)", 15, 16, NutrientMet},
}

var serumLitersPerAcre = []SerumDose{
	{ItemNitroBoost, 22},
	{ItemPhosBoost, 14},
	{ItemRootSerum, 18},
}

// FertilizerPlan scales the serum programme to acres.
func FertilizerPlan(acres float64) (FertilizerAdvice, error) {
	if !(acres > 0) || math.IsInf(acres, 0) {
		return FertilizerAdvice{}, ValidationError{Field: "acres", Reason: fmt.Sprintf("must be a positive area, got %v", acres)}
	}
	doses := make([]SerumDose, len(serumLitersPerAcre))
	for i, d := range serumLitersPerAcre {
		doses[i] = SerumDose{Item: d.Item, Liters: acres * d.Liters}
	}
	return FertilizerAdvice{
		Acres:     acres,
		Nutrients: append([]NutrientGap(nil), soilNutrients...),
		Doses:     doses,
	}, nil
}
