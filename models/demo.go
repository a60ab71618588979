package models

// DemoProperties returns the curated listings served when no database is
// configured and seeded into an empty property collection.
func DemoProperties() []Property {
	return []Property{
		{
			Title:       "Dal Lake Waterfront Villa",
			Description: "Elegant lakefront retreat with panoramic Himalayan views and private shikara access.",
			Address:     "Boulevard Road, Dal Lake",
			City:        "Srinagar",
			State:       "Jammu & Kashmir",
			Country:     "India",
			Price:       12500000,
			Bedrooms:    4,
			Bathrooms:   4.5,
			AreaSqFt:    3800,
			Images: []string{
				"https://images.unsplash.com/photo-1548013146-72479768bada?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1558981806-ec527fa84c39?q=80&w=1600&auto=format&fit=crop",
			},
			Featured: true,
			Status:   StatusForSale,
		},
		{
			Title:       "Gulmarg Alpine Chalet",
			Description: "Cozy ski-in chalet nestled among pines, minutes from gondola.",
			Address:     "Near Gulmarg Gondola",
			City:        "Gulmarg",
			State:       "Jammu & Kashmir",
			Country:     "India",
			Price:       8500000,
			Bedrooms:    3,
			Bathrooms:   3.0,
			AreaSqFt:    2200,
			Images: []string{
				"https://images.unsplash.com/photo-1519681393784-d120267933ba?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1519682577862-22b62b24e493?q=80&w=1600&auto=format&fit=crop",
			},
			Featured: true,
			Status:   StatusForSale,
		},
		{
			Title:       "Lidder River Retreat",
			Description: "Modern riverside home with sunlit interiors and cedar finishes.",
			Address:     "Aru Valley Road",
			City:        "Pahalgam",
			State:       "Jammu & Kashmir",
			Country:     "India",
			Price:       4200000,
			Bedrooms:    2,
			Bathrooms:   2.0,
			AreaSqFt:    1400,
			Images: []string{
				"https://images.unsplash.com/photo-1501183638710-841dd1904471?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1521401292936-0a2129a30b22?q=80&w=1600&auto=format&fit=crop",
			},
			Featured: false,
			Status:   StatusForSale,
		},
	}
}
