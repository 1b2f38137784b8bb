package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypePath(t *testing.T) {
	// Simple path
	p1 := NewTypePath("Order")
	assert.Equal(t, "Order", p1.String())

	// Field path
	p2 := p1.Field("Items")
	assert.Equal(t, "Order.Items", p2.String())

	// Slice path
	p3 := p2.Slice()
	assert.Equal(t, "Order.Items[]", p3.String())

	// Field in slice element
	p4 := p3.Field("Extra")
	assert.Equal(t, "Order.Items[].Extra", p4.String())

	// Pointer
	p5 := NewTypePath("Customer").Field("Address").Pointer()
	assert.Equal(t, "Customer.*Address", p5.String())

	// Earlier paths are not modified
	assert.Equal(t, "Order.Items", p2.String())
}

func TestTypePath_Empty(t *testing.T) {
	p := &TypePath{}
	assert.Equal(t, "[]", p.Slice().String())
	assert.Equal(t, "*", p.Pointer().String())
}
