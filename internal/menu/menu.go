// File: internal/menu/menu.go
package menu

// Domain is an ordered, fixed-size enumeration of the legal values for one
// categorical order attribute. Lookups reduce the given index modulo the
// domain size, so every integer maps onto a valid value and out-of-range
// errors are impossible by construction.
type Domain struct {
	name   string
	values []string
}

// NewDomain builds a Domain from a fixed, ordered value list.
func NewDomain(name string, values ...string) Domain {
	return Domain{name: name, values: values}
}

// Name returns the attribute name this domain enumerates.
func (d Domain) Name() string { return d.name }

// Len returns the number of legal values.
func (d Domain) Len() int { return len(d.values) }

// Values returns a copy of the ordered value list.
func (d Domain) Values() []string {
	out := make([]string, len(d.values))
	copy(out, d.values)
	return out
}

// ValueAt resolves an arbitrary integer index to a value, reducing it modulo
// the domain size. Negative indices wrap the same way.
func (d Domain) ValueAt(i int) string {
	n := len(d.values)
	return d.values[((i%n)+n)%n]
}

// Reduce maps an arbitrary integer onto a canonical in-range index.
func (d Domain) Reduce(i int) int {
	n := len(d.values)
	return ((i % n) + n) % n
}

// FromFraction maps a uniform fraction in [0, 1) onto an in-range index.
// Inputs at or above 1 clamp to the last value so a pathological 1.0 draw
// cannot escape the domain.
func (d Domain) FromFraction(f float64) int {
	i := int(f * float64(len(d.values)))
	if i >= len(d.values) {
		i = len(d.values) - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// IndexOf returns the canonical index of value, or -1 when the value is not
// part of the domain.
func (d Domain) IndexOf(value string) int {
	for i, v := range d.values {
		if v == value {
			return i
		}
	}
	return -1
}

// The fixed menu. Seasonal and "what's new" varieties are deliberately
// excluded; history records index into these lists, so reordering or removing
// entries invalidates any existing history file.
var (
	// TeaTypes enumerates the drink bases.
	TeaTypes = NewDomain("tea_type",
		"classic", "milk tea", "punch", "milk cap", "yogurt", "slush", "milk strike", "espresso")

	// IceCategories enumerates the ice levels.
	IceCategories = NewDomain("ice_category", "no", "less", "regular", "more")

	// Toppings enumerates the add-ins an order may carry.
	Toppings = NewDomain("toppings",
		"tapioca", "pudding", "nata jelly", "red bean", "coffee popping bubbles",
		"herbal jelly", "grape popping bubbles", "aloe jelly", "mango popping bubbles",
		"lychee crystal bubbles")
)
