package models

// Product is a schema example; no endpoint serves it yet.
type Product struct {
	Title       string  `bson:"title" json:"title" validate:"required"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price" validate:"gte=0"`
	Category    string  `bson:"category" json:"category" validate:"required"`
	InStock     bool    `bson:"in_stock" json:"in_stock"`
}
