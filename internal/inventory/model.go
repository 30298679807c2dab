package inventory

// Unit is the measure an ingredient price is expressed against.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "g"
	UnitLiter    Unit = "l"
	UnitMillilit Unit = "ml"
	UnitPiece    Unit = "pcs"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitMillilit, UnitPiece:
		return true
	}
	return false
}

// Ingredient is a priced raw material. PricePerUnit is the price of exactly
// one Unit of it.
type Ingredient struct {
	ID           string  `json:"id" firestore:"-"`
	Name         string  `json:"name" firestore:"name"`
	Unit         Unit    `json:"unit" firestore:"unit"`
	PricePerUnit float64 `json:"pricePerUnit" firestore:"pricePerUnit"`
}
