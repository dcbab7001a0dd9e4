package flavour

// Profile es el contenido editorial de un sabor. Es data de display:
// la clasificacion no depende de nada de lo que hay aca.
type Profile struct {
	Flavour    Flavour  `json:"flavour"`
	Label      string   `json:"label"`
	Tagline    string   `json:"tagline"`
	Summary    string   `json:"summary"`
	GreenFlags []string `json:"green_flags"`
	RedFlags   []string `json:"red_flags"`
}

var profiles = map[Flavour]Profile{
	Vanilla: {
		Flavour: Vanilla,
		Label:   "Vanilla",
		Tagline: "The steady classic",
		Summary: "Reliable, composed and intentional. Vanilla builds slowly and rarely breaks what it builds.",
		GreenFlags: []string{"Keeps plans and promises", "Calm under pressure"},
		RedFlags:   []string{"Can read as guarded", "Avoids rocking the boat"},
	},
	Strawberry: {
		Flavour: Strawberry,
		Label:   "Strawberry",
		Tagline: "The devoted romantic",
		Summary: "Warm, affectionate and openly sentimental, but needs frequent reassurance that the feeling is mutual.",
		GreenFlags: []string{"Generous with affection", "Remembers the small things"},
		RedFlags:   []string{"Reads silence as rejection", "Over-invests early"},
	},
	Chocolate: {
		Flavour: Chocolate,
		Label:   "Chocolate",
		Tagline: "The intense dreamer",
		Summary: "Feels everything at full volume. Imaginative and passionate, with highs and lows to match.",
		GreenFlags: []string{"Deep emotional range", "Never boring"},
		RedFlags:   []string{"Spirals when insecure", "Chaos over routine"},
	},
	Banana: {
		Flavour: Banana,
		Label:   "Banana",
		Tagline: "The sunny adventurer",
		Summary: "Easygoing, curious and social. Brings lightness to a relationship and rarely holds a grudge.",
		GreenFlags: []string{"Upbeat through setbacks", "Makes friends everywhere"},
		RedFlags:   []string{"Dodges heavy conversations", "Commitment drifts"},
	},
	Mint: {
		Flavour: Mint,
		Label:   "Mint",
		Tagline: "The free thinker",
		Summary: "Original and fiercely independent. Connects through ideas first and keeps a cool buffer around feelings.",
		GreenFlags: []string{"Endlessly interesting", "Respects autonomy"},
		RedFlags:   []string{"Hard to pin down", "Intellectualizes emotions"},
	},
	Cherry: {
		Flavour: Cherry,
		Label:   "Cherry",
		Tagline: "The firecracker",
		Summary: "Magnetic and dramatic. Loves loudly, fights loudly, and keeps the relationship at a boil.",
		GreenFlags: []string{"Unmistakable passion", "Fights for the relationship"},
		RedFlags:   []string{"Conflict as sport", "Jealous streak"},
	},
	Bubblegum: {
		Flavour: Bubblegum,
		Label:   "Bubblegum",
		Tagline: "The eager pleaser",
		Summary: "Sweet, flexible and endlessly accommodating, sometimes at the cost of its own needs.",
		GreenFlags: []string{"Easy to be around", "Puts partners first"},
		RedFlags:   []string{"Says yes when it means no", "Anxious when unanchored"},
	},
	Coffee: {
		Flavour: Coffee,
		Label:   "Coffee",
		Tagline: "The driven professional",
		Summary: "Ambitious, disciplined and self-contained. Shows love through competence more than words.",
		GreenFlags: []string{"Dependable provider energy", "Sharp and curious"},
		RedFlags:   []string{"Work comes first", "Emotionally rationed"},
	},
	Watermelon: {
		Flavour: Watermelon,
		Label:   "Watermelon",
		Tagline: "The social heart",
		Summary: "Big, warm, crowd-pleasing energy. Happiest when the relationship has an audience of friends.",
		GreenFlags: []string{"Everyone's favourite plus-one", "Genuinely kind"},
		RedFlags:   []string{"Needs constant company", "Surface over depth"},
	},
	Lemon: {
		Flavour: Lemon,
		Label:   "Lemon",
		Tagline: "The guarded cynic",
		Summary: "Sharp-tongued and self-protective. Cares more than it shows and shows less the more it cares.",
		GreenFlags: []string{"Honest to a fault", "Loyal once won over"},
		RedFlags:   []string{"Pushes people away first", "Expects the worst"},
	},
	Coconut: {
		Flavour: Coconut,
		Label:   "Coconut",
		Tagline: "The lone island",
		Summary: "Private, calm and self-sufficient. A rich interior life that very few are invited into.",
		GreenFlags: []string{"Low drama", "Strong sense of self"},
		RedFlags:   []string{"Slow to open up", "Disappears under stress"},
	},
	Grape: {
		Flavour: Grape,
		Label:   "Grape",
		Tagline: "The old soul",
		Summary: "Thoughtful, empathetic and a little melancholy. Wants depth and meaning in every bond.",
		GreenFlags: []string{"Listens like it matters", "Emotionally literate"},
		RedFlags:   []string{"Broods over slights", "Romanticizes the past"},
	},
	Pineapple: {
		Flavour: Pineapple,
		Label:   "Pineapple",
		Tagline: "The confident spark",
		Summary: "Bold, secure and spontaneous. Chases novelty without losing its footing.",
		GreenFlags: []string{"Secure and direct", "Up for anything"},
		RedFlags:   []string{"Impatient with worriers", "Blunt past the point of tact"},
	},
	Mango: {
		Flavour: Mango,
		Label:   "Mango",
		Tagline: "The passionate wanderer",
		Summary: "Expressive, adventurous and moody in equal measure. Loves hard and wanders when restless.",
		GreenFlags: []string{"Infectious enthusiasm", "Emotionally available"},
		RedFlags:   []string{"Restless feet", "Runs hot and cold"},
	},
}

// ProfileFor devuelve el perfil editorial de un sabor.
func ProfileFor(f Flavour) (Profile, bool) {
	p, ok := profiles[f]
	return p, ok
}

// compatibility es la matriz triangular superior (orden canonico de All).
// Puntajes 1-10, autorados a mano junto con los perfiles.
var compatibility = map[Flavour]map[Flavour]int{
	Vanilla: {
		Vanilla: 7, Strawberry: 6, Chocolate: 3, Banana: 5, Mint: 5, Cherry: 3,
		Bubblegum: 6, Coffee: 8, Watermelon: 5, Lemon: 4, Coconut: 6, Grape: 6,
		Pineapple: 6, Mango: 4,
	},
	Strawberry: {
		Strawberry: 6, Chocolate: 5, Banana: 6, Mint: 3, Cherry: 4, Bubblegum: 7,
		Coffee: 5, Watermelon: 7, Lemon: 3, Coconut: 3, Grape: 8, Pineapple: 5,
		Mango: 6,
	},
	Chocolate: {
		Chocolate: 4, Banana: 5, Mint: 4, Cherry: 6, Bubblegum: 5, Coffee: 3,
		Watermelon: 4, Lemon: 3, Coconut: 2, Grape: 7, Pineapple: 5, Mango: 7,
	},
	Banana: {
		Banana: 7, Mint: 6, Cherry: 5, Bubblegum: 6, Coffee: 4, Watermelon: 8,
		Lemon: 3, Coconut: 4, Grape: 5, Pineapple: 8, Mango: 7,
	},
	Mint: {
		Mint: 6, Cherry: 3, Bubblegum: 3, Coffee: 7, Watermelon: 4, Lemon: 5,
		Coconut: 7, Grape: 6, Pineapple: 6, Mango: 5,
	},
	Cherry: {
		Cherry: 3, Bubblegum: 4, Coffee: 3, Watermelon: 6, Lemon: 4, Coconut: 2,
		Grape: 5, Pineapple: 6, Mango: 6,
	},
	Bubblegum: {
		Bubblegum: 5, Coffee: 5, Watermelon: 7, Lemon: 3, Coconut: 3, Grape: 6,
		Pineapple: 6, Mango: 5,
	},
	Coffee: {
		Coffee: 6, Watermelon: 5, Lemon: 5, Coconut: 7, Grape: 6, Pineapple: 6,
		Mango: 4,
	},
	Watermelon: {
		Watermelon: 7, Lemon: 3, Coconut: 3, Grape: 5, Pineapple: 8, Mango: 7,
	},
	Lemon: {
		Lemon: 3, Coconut: 5, Grape: 5, Pineapple: 4, Mango: 3,
	},
	Coconut: {
		Coconut: 6, Grape: 5, Pineapple: 5, Mango: 3,
	},
	Grape: {
		Grape: 6, Pineapple: 5, Mango: 6,
	},
	Pineapple: {
		Pineapple: 7, Mango: 7,
	},
	Mango: {
		Mango: 5,
	},
}

// Compatibility devuelve el puntaje 1-10 para un par de sabores.
// El lookup es independiente del orden del par.
func Compatibility(a, b Flavour) (int, bool) {
	if row, ok := compatibility[a]; ok {
		if score, ok := row[b]; ok {
			return score, true
		}
	}
	if row, ok := compatibility[b]; ok {
		if score, ok := row[a]; ok {
			return score, true
		}
	}
	return 0, false
}
