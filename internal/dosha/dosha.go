// Package dosha scores the constitution quiz. It is a fixed lookup table:
// each answer tags one dosha and the most tagged dosha wins.
package dosha

import (
	"fmt"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
)

type Dosha string

const (
	Vata  Dosha = "Vata"
	Pitta Dosha = "Pitta"
	Kapha Dosha = "Kapha"
)

// Order is the tally order; on a tie the later dosha wins.
var Order = []Dosha{Vata, Pitta, Kapha}

func (d Dosha) Valid() bool {
	return d == Vata || d == Pitta || d == Kapha
}

type Option struct {
	Text string `json:"text"`
	Type Dosha  `json:"type"`
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

type Profile struct {
	Title           string   `json:"title"`
	Description     string   `json:"desc"`
	Recommendations []string `json:"recommendations"`
}

var Questions = []Question{
	{ID: 1, Text: "How would you describe your body frame?", Options: []Option{
		{"Thin, lean, hard to gain weight", Vata},
		{"Medium build, muscular", Pitta},
		{"Large build, gain weight easily", Kapha},
	}},
	{ID: 2, Text: "How is your skin usually?", Options: []Option{
		{"Dry, rough, or cold", Vata},
		{"Sensitive, reddish, or warm", Pitta},
		{"Oily, smooth, or cool", Kapha},
	}},
	{ID: 3, Text: "How is your temperament?", Options: []Option{
		{"Energetic, creative, anxious", Vata},
		{"Focused, intense, irritable", Pitta},
		{"Calm, steady, slow to anger", Kapha},
	}},
	{ID: 4, Text: "How is your digestion?", Options: []Option{
		{"Irregular, prone to gas/bloating", Vata},
		{"Strong, get hungry easily", Pitta},
		{"Slow, feel heavy after eating", Kapha},
	}},
}

var Profiles = map[Dosha]Profile{
	Vata: {
		Title:           "Vata Dominant",
		Description:     "You are governed by Air & Ether. You are creative and energetic but prone to anxiety and dryness. Focus on warmth, grounding foods, and routine.",
		Recommendations: []string{"1", "3", "6"},
	},
	Pitta: {
		Title:           "Pitta Dominant",
		Description:     "You are governed by Fire & Water. You are ambitious and focused but prone to inflammation and acidity. Focus on cooling foods and relaxation.",
		Recommendations: []string{"2", "4"},
	},
	Kapha: {
		Title:           "Kapha Dominant",
		Description:     "You are governed by Earth & Water. You are calm and loyal but prone to lethargy and weight gain. Focus on spicy foods and regular exercise.",
		Recommendations: []string{"1", "5"},
	},
}

type Result struct {
	Dosha       Dosha           `json:"dosha"`
	Title       string          `json:"title"`
	Description string          `json:"desc"`
	Scores      map[Dosha]int   `json:"scores"`
	Products    []model.Product `json:"products"`
}

// ProductLookup resolves recommended product ids against the catalog.
type ProductLookup func(id string) (model.Product, bool)

// Evaluate tallies one answer per question and returns the winning profile.
// Recommended ids missing from the catalog are skipped.
func Evaluate(answers []Dosha, lookup ProductLookup) (Result, error) {
	if len(answers) != len(Questions) {
		return Result{}, errx.Validation("answers", fmt.Sprintf("Expected %d answers, got %d", len(Questions), len(answers)))
	}
	scores := make(map[Dosha]int, len(Order))
	for _, d := range Order {
		scores[d] = 0
	}
	for i, a := range answers {
		if !a.Valid() {
			return Result{}, errx.Validation("answers", fmt.Sprintf("Answer %d has unknown dosha %q", i+1, a))
		}
		scores[a]++
	}

	winner := Order[0]
	for _, d := range Order[1:] {
		if !(scores[winner] > scores[d]) {
			winner = d
		}
	}

	profile := Profiles[winner]
	res := Result{
		Dosha:       winner,
		Title:       profile.Title,
		Description: profile.Description,
		Scores:      scores,
	}
	if lookup != nil {
		for _, id := range profile.Recommendations {
			if p, ok := lookup(id); ok {
				res.Products = append(res.Products, p)
			}
		}
	}
	return res, nil
}
