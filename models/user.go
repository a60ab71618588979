package models

// User is a schema example; no endpoint serves it yet.
type User struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Email    string `bson:"email" json:"email" validate:"required,email"`
	Address  string `bson:"address" json:"address" validate:"required"`
	Age      *int   `bson:"age,omitempty" json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive bool   `bson:"is_active" json:"is_active"`
}
