// File: internal/generator/generator.go
package generator

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/freshsips/bobagen/internal/order"
)

// Config carries the tunables for a Generator.
type Config struct {
	// ResetDays is the novelty renewal period N. Zero selects
	// DefaultResetDays.
	ResetDays int
	// MinToppings and MaxToppings bound the topping count drawn per order
	// (inclusive). Zero values select the defaults 1 and 3. The count is the
	// number of draws, not of distinct toppings: duplicate draws collapse
	// when the order is composed, so an order may carry fewer toppings than
	// were drawn.
	MinToppings int
	MaxToppings int
	// Seed seeds the internal RNG; 0 means seed from the wall clock.
	Seed int64
	// Rng, when set, overrides Seed entirely. Used by tests for
	// deterministic draws.
	Rng *rand.Rand
}

// Generator produces novel orders from an order history. It is a pure
// synchronous computation over an immutable history snapshot; it neither
// persists anything nor guards against concurrent use of its RNG.
type Generator struct {
	rng         *rand.Rand
	resetDays   int
	minToppings int
	maxToppings int
	log         *zap.Logger
}

// New builds a Generator from cfg.
func New(cfg Config, logger *zap.Logger) *Generator {
	rng := cfg.Rng
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	if cfg.ResetDays <= 0 {
		cfg.ResetDays = DefaultResetDays
	}
	if cfg.MinToppings <= 0 {
		cfg.MinToppings = 1
	}
	if cfg.MaxToppings < cfg.MinToppings {
		cfg.MaxToppings = cfg.MinToppings + 2
	}
	return &Generator{
		rng:         rng,
		resetDays:   cfg.ResetDays,
		minToppings: cfg.MinToppings,
		maxToppings: cfg.MaxToppings,
		log:         logger.Named("generator"),
	}
}

// Generate produces a new order. With an empty history every attribute is
// drawn uniformly (the bootstrap case); otherwise the history is folded into
// per-domain weight vectors and attributes are drawn proportionally to them.
// History records must not be dated after today.
func (g *Generator) Generate(history []order.Record, today time.Time) order.Order {
	if len(history) == 0 {
		g.log.Debug("empty history, bootstrapping with uniform draws")
		return g.bootstrap()
	}

	w := ComputeWeights(history, today, g.resetDays)
	g.log.Debug("computed novelty weights",
		zap.Int("history_len", len(history)),
		zap.Int("reset_days", g.resetDays),
		zap.Float64s("toppings", w.Toppings),
		zap.Float64s("tea_types", w.TeaTypes),
		zap.Float64s("ice_categories", w.IceCategories))

	toppings := sampleIndices(g.rng, w.Toppings, g.toppingCount())
	teaType := sampleIndex(g.rng, w.TeaTypes)
	ice := sampleIndex(g.rng, w.IceCategories)
	sugar := g.rng.Intn(100)
	return order.FromIndices(toppings, teaType, sugar, ice)
}

// bootstrap draws every attribute uniformly via fractional-index mapping,
// ignoring weights entirely.
func (g *Generator) bootstrap() order.Order {
	toppings := make([]float64, g.toppingCount())
	for i := range toppings {
		toppings[i] = g.rng.Float64()
	}
	return order.FromFractions(toppings, g.rng.Float64(), g.rng.Float64(), g.rng.Float64())
}

func (g *Generator) toppingCount() int {
	return g.minToppings + g.rng.Intn(g.maxToppings-g.minToppings+1)
}
