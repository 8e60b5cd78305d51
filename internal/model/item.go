package model

// Item is a named budget entry.
// Name is the lookup key; Amount defaults to 0 when unset.
type Item struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
