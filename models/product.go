package models

type Category string

const (
	CategorySandwich Category = "sandwich"
	CategoryBread    Category = "bread"
	CategoryPastry   Category = "pastry"
	CategoryCake     Category = "cake"
	CategoryDonut    Category = "donut"
	CategoryTart     Category = "tart"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySandwich,
	CategoryBread,
	CategoryPastry,
	CategoryCake,
	CategoryDonut,
	CategoryTart,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is immutable reference data owned by the catalog.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
}
