package domain

// Category is the single definition of the DApp category enum, shared by the
// HTTP validation layer and the client-side presentation mapping. The backend
// set mirrors what the ingestion job writes into dapp_rankings; the display
// set adds presentation-only categories that never appear in the store.
type Category string

const (
	CategoryAI         Category = "AI"
	CategoryDEX        Category = "DEX"
	CategoryNFT        Category = "NFT"
	CategoryLending    Category = "Lending"
	CategoryBridge     Category = "Bridge"
	CategoryInfra      Category = "Infra"
	CategoryAggregator Category = "Aggregator"
	CategoryMarketing  Category = "Marketing"
	CategoryUnknown    Category = "Unknown"

	// Presentation-only categories.
	CategoryGaming        Category = "Gaming"
	CategoryDeFi          Category = "DeFi"
	CategoryYield         Category = "Yield"
	CategoryLiquidStaking Category = "Liquid Staking"
)

// BackendCategories is the closed set accepted by the by-category endpoint.
var BackendCategories = []Category{
	CategoryAI,
	CategoryDEX,
	CategoryNFT,
	CategoryLending,
	CategoryBridge,
	CategoryInfra,
	CategoryAggregator,
	CategoryMarketing,
	CategoryUnknown,
}

var displayCategories = map[Category]struct{}{
	CategoryAI:            {},
	CategoryDEX:           {},
	CategoryNFT:           {},
	CategoryLending:       {},
	CategoryBridge:        {},
	CategoryInfra:         {},
	CategoryAggregator:    {},
	CategoryMarketing:     {},
	CategoryGaming:        {},
	CategoryDeFi:          {},
	CategoryYield:         {},
	CategoryLiquidStaking: {},
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory validates a raw path parameter against the backend enum.
// It must be called before the value reaches any query.
func ParseCategory(s string) (Category, bool) {
	for _, c := range BackendCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// MapDisplayCategory maps a backend category string to its display category.
// "Unknown" and any unrecognized value fall back to DeFi.
func MapDisplayCategory(s string) Category {
	c := Category(s)
	if _, ok := displayCategories[c]; ok {
		return c
	}
	return CategoryDeFi
}
