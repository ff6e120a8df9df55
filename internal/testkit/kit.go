// Package testkit generates deterministic synthetic datasets for tests.
package testkit

import (
	"fmt"
	"math/rand"

	"datalens/domain/dataset"
)

// seed fixes the generator so suites see identical data on every run
const seed = 42

var regions = []string{"North", "North", "North", "South", "East", "West"}

var noteFragments = []string{
	"customer asked for gift wrap",
	"delayed by carrier",
	"repeat buyer",
	"promo code applied",
	"address updated at checkout",
	"left at front desk",
	"called support once",
	"priority handling requested",
}

// RetailRows builds n synthetic order rows with known structure:
// a unique order_id, a skewed categorical region (North dominates),
// upward-trending units, revenue correlated with units, a discount column
// with injected outliers and missing cells, and a free-text notes column.
// When n >= 10 the last row duplicates the one before it, so the dataset
// always contains exactly one duplicate pair without flattening the
// first-vs-last trend endpoints.
func RetailRows(n int) []dataset.Row {
	rng := rand.New(rand.NewSource(seed))
	rows := make([]dataset.Row, 0, n)

	for i := 0; i < n; i++ {
		units := 50.0 + 0.5*float64(i) + rng.Float64()*4
		revenue := units*19.99 + rng.Float64()*10

		var discount any = 5.0 + rng.Float64()*2
		switch {
		case i%25 == 7:
			discount = 95.0 + rng.Float64() // injected outlier
		case i%12 == 3:
			discount = nil // injected missing cell
		}

		rows = append(rows, dataset.Row{
			"order_id": fmt.Sprintf("ORD-%04d", i),
			"region":   regions[rng.Intn(len(regions))],
			"units":    units,
			"revenue":  revenue,
			"discount": discount,
			"notes":    noteFragments[rng.Intn(len(noteFragments))] + fmt.Sprintf(" #%d", rng.Intn(1000)),
		})
	}

	if n >= 10 {
		dup := make(dataset.Row, len(rows[n-2]))
		for k, v := range rows[n-2] {
			dup[k] = v
		}
		rows[n-1] = dup
	}
	return rows
}

// ConstantColumn returns n copies of the same value, for degenerate-case tests
func ConstantColumn(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
