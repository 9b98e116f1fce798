// Package quality holds the fixed integration quality catalog and reduces it
// to one overall rating.
package quality

import (
	"math"

	"github.com/danielpatrickdp/eres666/internal/fault"
)

// #region catalog
// Catalog returns a copy of the fixed five-category table in display order.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	for i, c := range catalog {
		out[i] = Category{
			Name:     c.Name,
			Score:    c.Score,
			Evidence: append([]string(nil), c.Evidence...),
		}
	}
	return out
}

// #endregion catalog

// #region aggregate
// Mean is the unweighted mean of N scores, each bounded to [0,10].
func Mean(categories []Category) (float64, error) {
	if len(categories) == 0 {
		return 0, &fault.Error{Kind: fault.InvalidRange, Op: "quality.mean", Field: "categories", Msg: "no categories"}
	}
	var total float64
	for _, c := range categories {
		if math.IsNaN(c.Score) || c.Score < MinScore || c.Score > MaxScore {
			return 0, fault.OutOfRange("quality.mean", c.Name, c.Score, MinScore, MaxScore)
		}
		total += c.Score
	}
	return total / float64(len(categories)), nil
}

// Aggregate returns the mean of the fixed catalog.
func Aggregate() float64 {
	avg, err := Mean(catalog)
	if err != nil {
		panic("quality: invalid built-in catalog: " + err.Error())
	}
	return avg
}

// #endregion aggregate
