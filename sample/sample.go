// Package sample declares identifiers and struct tags that exercise every
// branch of the symbol encoder. The analyzer and symbol table tests load it.
package sample

// Café has a Latin-1 name, tagged fields and a nested anonymous struct.
type Café struct {
	Größe int    `json:"größe"`
	Name  string `json:"name,omitempty" yaml:"name"`
	Emoji string `label:"😀"`
	Plain int
	Menü  struct {
		Π float64 `json:"pi"`
	}

	secret string
}

// Señal returns the café name.
func (c *Café) Señal() string {
	return c.Name + c.secret
}

// Plain has nothing that needs escaping.
type Plain struct {
	ID int `json:"id"`
}

// Ω is a constant with a Greek name.
const Ω = 1

// Größen holds sizes.
var Größen = []int{Ω}

// Überprüfen checks a café.
func Überprüfen(c Café) bool {
	return c.Größe > 0
}

func hilfsfunktion() {}
