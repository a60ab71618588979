package models

// Inquiry is a contact submission from a site visitor. Write-only: records
// are created once and never read back by the API.
type Inquiry struct {
	Name       string `bson:"name" json:"name" validate:"required"`
	Email      string `bson:"email" json:"email" validate:"required,email"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Message    string `bson:"message" json:"message" validate:"required"`
	PropertyID string `bson:"property_id,omitempty" json:"property_id,omitempty"`
}
