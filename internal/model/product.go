package model

import "slices"

// Product categories offered by the store. The set is fixed; admin edits
// cannot introduce new ones.
const (
	CategoryImmunityEnergy   = "Immunity & Energy"
	CategoryGeneralWellness  = "General Wellness"
	CategoryHerbalTeas       = "Herbal Teas"
	CategoryOrganicHoney     = "Organic Honey"
	CategoryEssentialOils    = "Essential Oils"
	CategorySpicesSuperfoods = "Spices & Superfoods"
	CategoryHairSkinCare     = "Hair & Skin Care"
	CategoryPainRelief       = "Pain Relief"
	CategoryChronicDiseases  = "Chronic Diseases"
	CategoryMentalWellness   = "Mental Wellness"
)

// Categories lists every known category in display order.
var Categories = []string{
	CategoryImmunityEnergy,
	CategoryGeneralWellness,
	CategoryHerbalTeas,
	CategoryOrganicHoney,
	CategoryEssentialOils,
	CategorySpicesSuperfoods,
	CategoryHairSkinCare,
	CategoryPainRelief,
	CategoryChronicDiseases,
	CategoryMentalWellness,
}

// IsKnownCategory reports whether c belongs to the fixed category set.
func IsKnownCategory(c string) bool {
	return slices.Contains(Categories, c)
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	ReviewsList []Review `json:"reviewsList,omitempty"`
	Benefits    []string `json:"benefits"`
	Ingredients []string `json:"ingredients"`
	InStock     bool     `json:"inStock"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.ReviewsList = slices.Clone(p.ReviewsList)
	p.Benefits = slices.Clone(p.Benefits)
	p.Ingredients = slices.Clone(p.Ingredients)
	return p
}

// ProductPatch carries a partial product update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int      `json:"price,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	Benefits    *[]string `json:"benefits,omitempty"`
	Ingredients *[]string `json:"ingredients,omitempty"`
	InStock     *bool     `json:"inStock,omitempty"`
}

// Apply merges the patch into p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Image != nil {
		p.Image = *pp.Image
	}
	if pp.Rating != nil {
		p.Rating = *pp.Rating
	}
	if pp.Benefits != nil {
		p.Benefits = slices.Clone(*pp.Benefits)
	}
	if pp.Ingredients != nil {
		p.Ingredients = slices.Clone(*pp.Ingredients)
	}
	if pp.InStock != nil {
		p.InStock = *pp.InStock
	}
}

type Doctor struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Experience int     `json:"experience"`
	Image      string  `json:"image"`
	Available  bool    `json:"available"`
	Price      int     `json:"price"`
	Rating     float64 `json:"rating"`
	Bio        string  `json:"bio"`
}

type DoctorPatch struct {
	Name       *string  `json:"name,omitempty"`
	Specialty  *string  `json:"specialty,omitempty"`
	Experience *int     `json:"experience,omitempty"`
	Image      *string  `json:"image,omitempty"`
	Available  *bool    `json:"available,omitempty"`
	Price      *int     `json:"price,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
}

func (dp DoctorPatch) Apply(d *Doctor) {
	if dp.Name != nil {
		d.Name = *dp.Name
	}
	if dp.Specialty != nil {
		d.Specialty = *dp.Specialty
	}
	if dp.Experience != nil {
		d.Experience = *dp.Experience
	}
	if dp.Image != nil {
		d.Image = *dp.Image
	}
	if dp.Available != nil {
		d.Available = *dp.Available
	}
	if dp.Price != nil {
		d.Price = *dp.Price
	}
	if dp.Rating != nil {
		d.Rating = *dp.Rating
	}
	if dp.Bio != nil {
		d.Bio = *dp.Bio
	}
}

type Therapy struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}
