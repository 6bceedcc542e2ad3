package model

// Category is the closed set of expense categories.
type Category string

const (
	CategoryFood   Category = "Food"
	CategoryTravel Category = "Travel"
	CategoryFees   Category = "Fees"
	CategoryFun    Category = "Fun"
	CategoryOthers Category = "Others"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTravel,
	CategoryFees,
	CategoryFun,
	CategoryOthers,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
