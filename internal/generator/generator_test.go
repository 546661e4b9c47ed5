// File: internal/generator/generator_test.go
package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freshsips/bobagen/internal/menu"
	"github.com/freshsips/bobagen/internal/order"
)

func newTestGenerator(seed int64) *Generator {
	return New(Config{Rng: rand.New(rand.NewSource(seed))}, zap.NewNop())
}

// assertWellFormed checks the structural invariants every generated order
// must satisfy regardless of history.
func assertWellFormed(t *testing.T, o order.Order) {
	t.Helper()
	require.GreaterOrEqual(t, len(o.Toppings), 1)
	require.LessOrEqual(t, len(o.Toppings), 3)

	seen := make(map[string]struct{})
	for _, top := range o.Toppings {
		require.NotEqual(t, -1, menu.Toppings.IndexOf(top), "unknown topping %q", top)
		_, dup := seen[top]
		require.False(t, dup, "duplicate topping %q", top)
		seen[top] = struct{}{}
	}

	require.NotEqual(t, -1, menu.TeaTypes.IndexOf(o.TeaType))
	require.NotEqual(t, -1, menu.IceCategories.IndexOf(o.IceCategory))
	require.GreaterOrEqual(t, o.SugarPercentage, 0)
	require.Less(t, o.SugarPercentage, 100)
}

func TestGenerateBootstrapWithEmptyHistory(t *testing.T) {
	gen := newTestGenerator(1)
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		assertWellFormed(t, gen.Generate(nil, today))
	}
}

func TestGenerateWeightedIsWellFormed(t *testing.T) {
	gen := newTestGenerator(2)
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	history := []order.Record{
		historyRecord(today, 1, []int{0, 2}, 4, 2),
		historyRecord(today, 3, []int{5}, 1, 0),
	}

	for i := 0; i < 500; i++ {
		assertWellFormed(t, gen.Generate(history, today))
	}
}

func TestGenerateNeverRepeatsTodaysIngredients(t *testing.T) {
	gen := newTestGenerator(3)
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	// Ordered today: tapioca, milk tea, no ice. All three carry weight 0, and
	// no domain has collapsed entirely, so none may be drawn again today.
	history := []order.Record{
		historyRecord(today, 0, []int{0}, 1, 0),
	}

	for i := 0; i < 1000; i++ {
		o := gen.Generate(history, today)
		assert.NotContains(t, o.Toppings, "tapioca")
		assert.NotEqual(t, "milk tea", o.TeaType)
		assert.NotEqual(t, "no", o.IceCategory)
	}
}

func TestGenerateForgetsOrdersPastReset(t *testing.T) {
	gen := newTestGenerator(4)
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	history := []order.Record{
		historyRecord(today, 5, []int{0}, 1, 0),
	}

	// The record is fully decayed, so its ingredients are ordinary candidates
	// again and show up over enough draws.
	var sawTapioca, sawMilkTea, sawNoIce bool
	for i := 0; i < 2000; i++ {
		o := gen.Generate(history, today)
		for _, top := range o.Toppings {
			if top == "tapioca" {
				sawTapioca = true
			}
		}
		if o.TeaType == "milk tea" {
			sawMilkTea = true
		}
		if o.IceCategory == "no" {
			sawNoIce = true
		}
	}
	assert.True(t, sawTapioca, "fully decayed topping never reappeared")
	assert.True(t, sawMilkTea, "fully decayed tea type never reappeared")
	assert.True(t, sawNoIce, "fully decayed ice category never reappeared")
}

func TestGenerateUniformFallbackOnCollapsedDomain(t *testing.T) {
	gen := newTestGenerator(5)
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	// Four same-day orders cover every ice category, collapsing that weight
	// vector to all zeros. Selection must then be uniform over all four.
	history := []order.Record{
		historyRecord(today, 0, []int{0}, 0, 0),
		historyRecord(today, 0, []int{1}, 1, 1),
		historyRecord(today, 0, []int{2}, 2, 2),
		historyRecord(today, 0, []int{3}, 3, 3),
	}

	const trials = 4000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[gen.Generate(history, today).IceCategory]++
	}

	require.Len(t, counts, 4, "uniform fallback must reach every ice category")
	for _, name := range menu.IceCategories.Values() {
		assert.InDelta(t, 0.25, float64(counts[name])/trials, 0.03, "ice category %q", name)
	}
}

func TestGenerateDeterministicForSameSeed(t *testing.T) {
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	history := []order.Record{
		historyRecord(today, 2, []int{1, 4}, 3, 2),
	}

	a := New(Config{Seed: 42}, zap.NewNop()).Generate(history, today)
	b := New(Config{Seed: 42}, zap.NewNop()).Generate(history, today)
	assert.Equal(t, a, b)
}

func TestNewAppliesDefaults(t *testing.T) {
	gen := New(Config{}, zap.NewNop())
	assert.Equal(t, DefaultResetDays, gen.resetDays)
	assert.Equal(t, 1, gen.minToppings)
	assert.Equal(t, 3, gen.maxToppings)
}

func TestGenerateHonorsToppingBounds(t *testing.T) {
	gen := New(Config{
		MinToppings: 2,
		MaxToppings: 2,
		Rng:         rand.New(rand.NewSource(6)),
	}, zap.NewNop())
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		o := gen.Generate(nil, today)
		// Two draws may collapse onto one topping after dedup; more than two
		// distinct toppings is impossible.
		assert.LessOrEqual(t, len(o.Toppings), 2)
		assert.GreaterOrEqual(t, len(o.Toppings), 1)
	}
}
