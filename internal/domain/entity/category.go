package entity

import "time"

// Category types: studio services vs food & beverage.
const (
	CategoryTypeStudio = "STUDIO"
	CategoryTypeFB     = "FB"
)

// Category groups products on the POS menu.
type Category struct {
	ID        int64
	Name      string
	Type      string // STUDIO, FB
	CreatedAt time.Time
}
