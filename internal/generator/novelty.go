// File: internal/generator/novelty.go
package generator

import (
	"math"
	"time"

	"github.com/freshsips/bobagen/internal/menu"
	"github.com/freshsips/bobagen/internal/order"
)

// DefaultResetDays is the elapsed-day threshold beyond which a past order no
// longer discourages its ingredients.
const DefaultResetDays = 5

// Penalty returns how strongly an item used the given number of days ago
// should be suppressed, as a score in [0, 1]:
//
//	max(1 - sqrt(N*days)/N, 0)
//
// The penalty is 1 for an item used today, decays monotonically, and reaches
// 0 once days >= resetDays. days must be non-negative; negative inputs are a
// caller bug and the result is undefined.
func Penalty(days, resetDays int) float64 {
	n := float64(resetDays)
	return math.Max(1-math.Sqrt(n*float64(days))/n, 0)
}

// Weights holds one non-negative sampling weight per value of each
// categorical domain. Vectors are derived fresh from history on every
// generation and never persisted. Sugar is continuous, so it carries no
// weight vector.
type Weights struct {
	Toppings      []float64
	TeaTypes      []float64
	IceCategories []float64
}

// ComputeWeights folds the order history into per-domain weight vectors.
// Every value starts at 1.0; each record subtracts its recency penalty from
// every value it references, floored at 0. Two recent orders sharing a
// topping therefore compound its suppression. All entries stay in [0, 1].
func ComputeWeights(history []order.Record, today time.Time, resetDays int) Weights {
	w := Weights{
		Toppings:      ones(menu.Toppings.Len()),
		TeaTypes:      ones(menu.TeaTypes.Len()),
		IceCategories: ones(menu.IceCategories.Len()),
	}
	for _, rec := range history {
		p := Penalty(rec.DaysBefore(today), resetDays)
		for _, t := range rec.Toppings {
			subtract(w.Toppings, menu.Toppings.Reduce(t), p)
		}
		subtract(w.TeaTypes, menu.TeaTypes.Reduce(rec.TeaType), p)
		subtract(w.IceCategories, menu.IceCategories.Reduce(rec.IceCategory), p)
	}
	return w
}

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func subtract(w []float64, i int, p float64) {
	w[i] = math.Max(w[i]-p, 0)
}
