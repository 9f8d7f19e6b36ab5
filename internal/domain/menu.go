package domain

// MenuSection is one navigable block of the menu. Section order is display
// order and never changes at runtime.
type MenuSection struct {
	ID       string     `bson:"id" json:"id"`
	Title    string     `bson:"title" json:"title"`
	Subtitle string     `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Items    []MenuItem `bson:"items" json:"items"`
}

// MenuItem identifiers are unique across the whole catalog; they are the join
// key for the availability overlay.
type MenuItem struct {
	ID       string    `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Veg      bool      `bson:"veg" json:"veg"`
	Variants []Variant `bson:"variants" json:"variants"`
}

// Variant is a priced size/portion option. Label is stored raw; normalization
// happens only at display/search time.
type Variant struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	Price int    `bson:"price" json:"price"`
}

// Diet is the customer-facing veg/non-veg/all selector.
type Diet string

const (
	DietAll    Diet = "all"
	DietVeg    Diet = "veg"
	DietNonVeg Diet = "non-veg"
)

func (d Diet) Valid() bool {
	switch d {
	case DietAll, DietVeg, DietNonVeg:
		return true
	}
	return false
}

// Matches reports whether an item passes the diet selector.
func (d Diet) Matches(item MenuItem) bool {
	switch d {
	case DietVeg:
		return item.Veg
	case DietNonVeg:
		return !item.Veg
	default:
		return true
	}
}
