package entities

// Presentation is a sellable variant of a menu product.
type Presentation struct {
	ProductID string
	Price     int64
}

// Product is the menu record a line item is built from.
//
// The base product id comes from the first presentation when there is one,
// otherwise from ID. The unit price prefers GeneralPrice, then the first
// presentation price, then 0.
type Product struct {
	ID            string
	Name          string
	ImageURL      string
	GeneralPrice  int64
	IsCombo       bool
	Presentations []Presentation
	ComboItems    []ComboComponent
}

func (p Product) ResolveProductID() string {
	if len(p.Presentations) > 0 && p.Presentations[0].ProductID != "" {
		return p.Presentations[0].ProductID
	}
	return p.ID
}

func (p Product) ResolveUnitPrice() int64 {
	if p.GeneralPrice > 0 {
		return p.GeneralPrice
	}
	if len(p.Presentations) > 0 && p.Presentations[0].Price > 0 {
		return p.Presentations[0].Price
	}
	return 0
}

// ModifierSelection is a modifier picked by the customer when adding a product.
type ModifierSelection struct {
	ID       string
	GroupID  string
	Name     string
	Price    int64
	Quantity int
}
