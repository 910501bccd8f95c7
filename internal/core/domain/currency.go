package domain

// Currency is a warehouse dimension row. Code is the ISO 4217 code and is
// globally unique in the warehouse.
type Currency struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Origin
}

func (c Currency) String() string {
	return c.Name
}
