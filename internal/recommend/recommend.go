package recommend

import (
	"sort"

	"github.com/arogyasagar/storefront/internal/model"
)

const (
	// Limit is the maximum number of recommendations returned.
	Limit = 4
	// TrendingRating is the rating a product must exceed to be trending.
	TrendingRating = 4.5
)

// Ranker is the view history as the selector sees it.
type Ranker interface {
	Ranked() []string
}

// Select picks up to Limit products. With no history it returns the first
// products rated above TrendingRating in catalog order; otherwise the
// products of the most viewed category by rating descending.
func Select(products []model.Product, history Ranker) []model.Product {
	ranked := history.Ranked()
	if len(ranked) == 0 {
		return trending(products)
	}

	top := ranked[0]
	var recs []model.Product
	for _, p := range products {
		if p.Category == top {
			recs = append(recs, p)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Rating > recs[j].Rating })
	if len(recs) > Limit {
		recs = recs[:Limit]
	}
	return recs
}

func trending(products []model.Product) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.Rating > TrendingRating {
			out = append(out, p)
			if len(out) == Limit {
				break
			}
		}
	}
	return out
}
