package core

// MarketStatus is the demand label attached to an egg product.
type MarketStatus string

const (
	MarketHigh     MarketStatus = "High"
	MarketStable   MarketStatus = "Stable"
	MarketFair     MarketStatus = "Fair"
	MarketTrending MarketStatus = "Trending"
)

// EggProfile is the nutritional analysis of one designer egg product. Each
// product also names a poultry meadow.
type EggProfile struct {
	Name             string       `json:"name"`
	ProteinG         float64      `json:"protein_g"`
	FatG             float64      `json:"fat_g"`
	CholineMg        float64      `json:"choline_mg"`
	AntioxidantPct   float64      `json:"antioxidant_pct"`
	SpecialComponent string       `json:"special_component"`
	Market           MarketStatus `json:"market_status"`
}

var eggCatalog = []EggProfile{
	{"Extra Protein", 18.5, 6.2, 520, 85, "L-Leucine", MarketHigh},
	{"Maternal Care", 14.2, 5.8, 450, 70, "Folate", MarketStable},
	{"Superior Breed", 15.0, 6.0, 350, 65, "Calcium", MarketFair},
	{"Cognition Booster", 13.5, 5.5, 610, 90, "DHA/EPA", MarketTrending},
	{"High Omega-3", 12.8, 6.5, 410, 60, "Alpha-Linolenic", MarketHigh},
	{"Turmeric Immune", 14.0, 5.9, 390, 85, "Curcumin", MarketHigh},
	{"Vigor Fertility", 14.5, 6.1, 410, 50, "Zinc/Selenium", MarketStable},
	{"Senior Friendly", 13.0, 5.2, 280, 75, "Glucosamine", MarketFair},
	{"Orange Yolk", 12.5, 6.3, 360, 95, "Carotenoids", MarketTrending},
	{"Diabetes Friendly", 13.2, 4.8, 375, 80, "Chromium", MarketHigh},
	{"Light on Gut", 11.8, 4.5, 240, 40, "Prebiotics", MarketStable},
	{"Standard Organic", 12.0, 5.5, 250, 30, "Vitamin D", MarketStable},
}

// EggCatalog returns the product line in catalog order.
func EggCatalog() []EggProfile {
	return append([]EggProfile(nil), eggCatalog...)
}

// EggProfileFor looks up a product by name.
func EggProfileFor(name string) (EggProfile, error) {
	for _, p := range eggCatalog {
		if p.Name == name {
			return p, nil
		}
	}
	return EggProfile{}, ErrNotFound{Kind: KindProduct, Key: name}
}
