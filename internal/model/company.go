package model

// Default labor and painting prices per m² for a freshly installed company.
const (
	DefaultLaborPrice    = 35.00
	DefaultPaintingPrice = 25.00
)

// Company is the contractor issuing budgets. It owns the unit price table and
// the default per-m² prices that seed every new calculation.
type Company struct {
	Name                 string         `json:"name"`
	CNPJ                 string         `json:"cnpj"`
	Phone                string         `json:"phone"`
	Email                string         `json:"email"`
	Logo                 string         `json:"logo,omitempty"` // path to a PNG or JPEG file
	DefaultLaborPrice    float64        `json:"default_labor_price"`
	DefaultPaintingPrice float64        `json:"default_painting_price"`
	MaterialPrices       UnitPriceTable `json:"material_prices"`
}

// DefaultCompany returns placeholder company data with the reference prices.
func DefaultCompany() Company {
	return Company{
		Name:                 "Minha Empresa Drywall",
		CNPJ:                 "00.000.000/0001-00",
		Phone:                "(11) 99999-9999",
		Email:                "contato@empresa.com",
		DefaultLaborPrice:    DefaultLaborPrice,
		DefaultPaintingPrice: DefaultPaintingPrice,
		MaterialPrices:       DefaultPrices(),
	}
}

// WithDefaultPrices fills price keys that are missing from the company's
// table, so data saved before a material existed keeps working.
func (c Company) WithDefaultPrices() Company {
	c.MaterialPrices = c.MaterialPrices.WithDefaults(DefaultPrices())
	return c
}
