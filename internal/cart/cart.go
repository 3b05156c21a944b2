// Package cart is the session cart: one line per product id, quantities
// incremented on repeat adds.
package cart

import (
	"slices"

	"github.com/arogyasagar/storefront/internal/model"
)

type Cart struct {
	lines []model.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add increments the line for p or appends a new line with quantity 1.
// It returns the resulting quantity.
func (c *Cart) Add(p model.Product) int {
	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity++
			return c.lines[i].Quantity
		}
	}
	c.lines = append(c.lines, model.CartLine{Product: p.Clone(), Quantity: 1})
	return 1
}

// Remove drops the whole line for productID regardless of quantity.
// It reports whether a line was removed.
func (c *Cart) Remove(productID string) bool {
	before := len(c.lines)
	c.lines = slices.DeleteFunc(c.lines, func(l model.CartLine) bool { return l.ID == productID })
	return len(c.lines) != before
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a deep copy of the cart contents.
func (c *Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	for i, l := range c.lines {
		out[i] = model.CartLine{Product: l.Product.Clone(), Quantity: l.Quantity}
	}
	return out
}

func (c *Cart) Quantity(productID string) int {
	for _, l := range c.lines {
		if l.ID == productID {
			return l.Quantity
		}
	}
	return 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total is Σ price × quantity, computed on every call.
func (c *Cart) Total() int {
	return Total(c.lines)
}

func Total(lines []model.CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}
