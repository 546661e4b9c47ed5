// File: internal/order/order.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/freshsips/bobagen/internal/menu"
)

// DateLayout is the calendar-date format used in history records.
const DateLayout = "2006-01-02"

// Order is one generated drink selection. Orders are value types: build one
// with FromIndices or FromFractions and treat it as immutable afterwards.
type Order struct {
	Toppings        []string
	TeaType         string
	SugarPercentage int
	IceCategory     string
}

// compose is the canonical constructor. It expects indices already reduced
// into their domains and a sugar percentage already in [0, 100). Toppings are
// deduplicated here, preserving first-seen order, so an order never repeats
// the same topping regardless of which adapter produced the indices.
func compose(toppings []int, teaType, sugar, ice int) Order {
	seen := make(map[int]struct{}, len(toppings))
	names := make([]string, 0, len(toppings))
	for _, t := range toppings {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		names = append(names, menu.Toppings.ValueAt(t))
	}
	return Order{
		Toppings:        names,
		TeaType:         menu.TeaTypes.ValueAt(teaType),
		SugarPercentage: sugar,
		IceCategory:     menu.IceCategories.ValueAt(ice),
	}
}

// FromIndices builds an Order from arbitrary integers, reducing each one
// modulo its domain size. The sugar percentage is reduced modulo 100.
func FromIndices(toppings []int, teaType, sugarPercentage, iceCategory int) Order {
	reduced := make([]int, len(toppings))
	for i, t := range toppings {
		reduced[i] = menu.Toppings.Reduce(t)
	}
	return compose(reduced,
		menu.TeaTypes.Reduce(teaType),
		((sugarPercentage%100)+100)%100,
		menu.IceCategories.Reduce(iceCategory))
}

// FromFractions builds an Order from uniform [0, 1) draws, mapping each
// fraction onto its domain. The sugar fraction scales to a whole percentage.
func FromFractions(toppings []float64, teaType, sugarPercentage, iceCategory float64) Order {
	idx := make([]int, len(toppings))
	for i, t := range toppings {
		idx[i] = menu.Toppings.FromFraction(t)
	}
	sugar := int(sugarPercentage * 100)
	if sugar > 99 {
		sugar = 99
	}
	return compose(idx, menu.TeaTypes.FromFraction(teaType), sugar, menu.IceCategories.FromFraction(iceCategory))
}

// Record is the persisted form of an Order: each chosen value replaced by its
// domain index, plus the calendar date the order was generated. Records are
// append-only once written; the on-disk JSON shape must not change, since the
// history file is read back verbatim.
type Record struct {
	Toppings        []int  `json:"toppings"`
	TeaType         int    `json:"tea_type"`
	SugarPercentage int    `json:"sugar_percentage"`
	IceCategory     int    `json:"ice_category"`
	Date            string `json:"date"`
}

// Record encodes the order for persistence, stamped with the given date.
func (o Order) Record(date time.Time) Record {
	tops := make([]int, len(o.Toppings))
	for i, t := range o.Toppings {
		tops[i] = menu.Toppings.IndexOf(t)
	}
	return Record{
		Toppings:        tops,
		TeaType:         menu.TeaTypes.IndexOf(o.TeaType),
		SugarPercentage: o.SugarPercentage,
		IceCategory:     menu.IceCategories.IndexOf(o.IceCategory),
		Date:            date.Format(DateLayout),
	}
}

// Order decodes the record back into the selection it encodes. Encoding an
// order and decoding the record reproduces the identical chosen values.
func (r Record) Order() Order {
	return FromIndices(r.Toppings, r.TeaType, r.SugarPercentage, r.IceCategory)
}

// DaysBefore returns the whole days elapsed between the record's date and
// today. Callers guarantee records are not dated in the future; a future date
// yields a negative count and downstream behavior is undefined. Records with
// unparseable dates are an upstream concern and count as dated today.
func (r Record) DaysBefore(today time.Time) int {
	d, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return 0
	}
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(d).Hours() / 24)
}

// String renders the order as a single human-readable sentence, e.g.
// "A milk tea tea with tapioca and pudding with 40 percent sugar and less ice."
func (o Order) String() string {
	var toppings string
	switch len(o.Toppings) {
	case 0:
		toppings = "no toppings"
	case 1:
		toppings = o.Toppings[0]
	case 2:
		toppings = o.Toppings[0] + " and " + o.Toppings[1]
	default:
		toppings = strings.Join(o.Toppings[:len(o.Toppings)-1], ", ") + ", and " + o.Toppings[len(o.Toppings)-1]
	}
	return fmt.Sprintf("A %s tea with %s with %d percent sugar and %s ice.",
		o.TeaType, toppings, o.SugarPercentage, o.IceCategory)
}
