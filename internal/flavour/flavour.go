package flavour

// Flavour es uno de los 14 arquetipos de personalidad del quiz.
type Flavour string

const (
	Vanilla    Flavour = "vanilla"
	Strawberry Flavour = "strawberry"
	Chocolate  Flavour = "chocolate"
	Banana     Flavour = "banana"
	Mint       Flavour = "mint"
	Cherry     Flavour = "cherry"
	Bubblegum  Flavour = "bubblegum"
	Coffee     Flavour = "coffee"
	Watermelon Flavour = "watermelon"
	Lemon      Flavour = "lemon"
	Coconut    Flavour = "coconut"
	Grape      Flavour = "grape"
	Pineapple  Flavour = "pineapple"
	Mango      Flavour = "mango"
)

// All devuelve los 14 sabores en orden canonico.
func All() []Flavour {
	return []Flavour{
		Vanilla, Strawberry, Chocolate, Banana, Mint, Cherry, Bubblegum,
		Coffee, Watermelon, Lemon, Coconut, Grape, Pineapple, Mango,
	}
}

// IsValid indica si el string corresponde a un sabor conocido.
func IsValid(f Flavour) bool {
	switch f {
	case Vanilla, Strawberry, Chocolate, Banana, Mint, Cherry, Bubblegum,
		Coffee, Watermelon, Lemon, Coconut, Grape, Pineapple, Mango:
		return true
	}
	return false
}
