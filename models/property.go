package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusForSale = "For Sale"
	StatusForRent = "For Rent"
	StatusSold    = "Sold"
)

type Property struct {
	Title       string   `bson:"title" json:"title" validate:"required"`
	Description string   `bson:"description" json:"description" validate:"required"`
	Address     string   `bson:"address" json:"address" validate:"required"`
	City        string   `bson:"city" json:"city" validate:"required"`
	State       string   `bson:"state" json:"state" validate:"required"`
	Country     string   `bson:"country" json:"country"`
	Price       float64  `bson:"price" json:"price" validate:"gte=0"`
	Bedrooms    int      `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   float64  `bson:"bathrooms" json:"bathrooms"`
	AreaSqFt    int      `bson:"area_sqft" json:"area_sqft"`
	Images      []string `bson:"images" json:"images"`
	Featured    bool     `bson:"featured" json:"featured"`
	Status      string   `bson:"status" json:"status"`
}

// PropertyFromDocument projects a raw stored document onto the Property
// shape. Required fields must be present with the right type; country,
// images, featured and status fall back to their defaults. Callers decide
// what to do with documents that fail the projection.
func PropertyFromDocument(doc bson.M) (Property, error) {
	var p Property
	var err error

	if p.Title, err = stringField(doc, "title"); err != nil {
		return Property{}, err
	}
	if p.Description, err = stringField(doc, "description"); err != nil {
		return Property{}, err
	}
	if p.Address, err = stringField(doc, "address"); err != nil {
		return Property{}, err
	}
	if p.City, err = stringField(doc, "city"); err != nil {
		return Property{}, err
	}
	if p.State, err = stringField(doc, "state"); err != nil {
		return Property{}, err
	}
	if p.Price, err = floatField(doc, "price"); err != nil {
		return Property{}, err
	}
	if p.Bedrooms, err = intField(doc, "bedrooms"); err != nil {
		return Property{}, err
	}
	if p.Bathrooms, err = floatField(doc, "bathrooms"); err != nil {
		return Property{}, err
	}
	if p.AreaSqFt, err = intField(doc, "area_sqft"); err != nil {
		return Property{}, err
	}

	p.Country = optionalString(doc, "country", "India")
	p.Status = optionalString(doc, "status", StatusForSale)
	if v, ok := doc["featured"].(bool); ok {
		p.Featured = v
	}
	if p.Images, err = stringSlice(doc, "images"); err != nil {
		return Property{}, err
	}
	return p, nil
}

func stringField(doc bson.M, name string) (string, error) {
	v, ok := doc[name]
	if !ok || v == nil {
		return "", fmt.Errorf("missing field %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", name)
	}
	return s, nil
}

func optionalString(doc bson.M, name, fallback string) string {
	if s, ok := doc[name].(string); ok && s != "" {
		return s
	}
	return fallback
}

// floatField accepts the numeric types the mongo driver decodes into.
func floatField(doc bson.M, name string) (float64, error) {
	v, ok := doc[name]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing field %q", name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("field %q is not numeric", name)
}

func intField(doc bson.M, name string) (int, error) {
	f, err := floatField(doc, name)
	if err != nil {
		return 0, err
	}
	n := int(f)
	if float64(n) != f {
		return 0, fmt.Errorf("field %q is not an integer", name)
	}
	return n, nil
}

func stringSlice(doc bson.M, name string) ([]string, error) {
	v, ok := doc[name]
	if !ok || v == nil {
		return []string{}, nil
	}
	switch arr := v.(type) {
	case []string:
		return arr, nil
	case primitive.A:
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("field %q contains a non-string entry", name)
			}
			out = append(out, s)
		}
		return out, nil
	case []interface{}:
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("field %q contains a non-string entry", name)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("field %q is not an array", name)
}
