package flavour

// Question es una pregunta del quiz con sus 5 opciones Likert.
type Question struct {
	Text    string    `json:"text"`
	Options [5]Option `json:"options"`
}

// Option es una opcion de respuesta con los deltas que aplica.
type Option struct {
	Text   string     `json:"text"`
	Deltas TraitDelta `json:"-"`
}

// TraitDelta son los ajustes que una respuesta suma a cada dimension.
// Rango por respuesta: -2..+2.
type TraitDelta struct {
	Openness          int
	Conscientiousness int
	Extraversion      int
	Agreeableness     int
	Neuroticism       int
	Anxious           int
	Avoidant          int
}

var likertLabels = [5]string{
	"Strongly disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly agree",
}

func likert(deltas [5]TraitDelta) [5]Option {
	var opts [5]Option
	for i := range opts {
		opts[i] = Option{Text: likertLabels[i], Deltas: deltas[i]}
	}
	return opts
}

// questions es el set fijo de 18 preguntas. Los deltas estan autorados a mano;
// la opcion neutral (indice 2) siempre suma cero en todas las dimensiones.
var questions = []Question{
	{
		Text: "Trying an unfamiliar cuisine on a first date sounds exciting, not risky.",
		Options: likert([5]TraitDelta{
			{Openness: -2}, {Openness: -1}, {}, {Openness: 1}, {Openness: 2},
		}),
	},
	{
		Text: "I plan dates down to the last detail.",
		Options: likert([5]TraitDelta{
			{Conscientiousness: -2}, {Conscientiousness: -1}, {}, {Conscientiousness: 1}, {Conscientiousness: 2},
		}),
	},
	{
		Text: "Big group dates energize me more than dinners for two.",
		Options: likert([5]TraitDelta{
			{Extraversion: -2}, {Extraversion: -1}, {}, {Extraversion: 1}, {Extraversion: 2},
		}),
	},
	{
		Text: "I would rather concede an argument than let it sour the whole evening.",
		Options: likert([5]TraitDelta{
			{Agreeableness: -2}, {Agreeableness: -1}, {}, {Agreeableness: 1}, {Agreeableness: 2},
		}),
	},
	{
		Text: "A reply that takes hours can send my whole mood spiralling.",
		Options: likert([5]TraitDelta{
			{Neuroticism: -2}, {Neuroticism: -1}, {}, {Neuroticism: 1}, {Neuroticism: 2},
		}),
	},
	{
		Text: "I worry that my partner will eventually lose interest in me.",
		Options: likert([5]TraitDelta{
			{Anxious: -2}, {Anxious: -1}, {}, {Anxious: 1}, {Anxious: 2},
		}),
	},
	{
		Text: "I need a lot of space, even from someone I love.",
		Options: likert([5]TraitDelta{
			{Avoidant: -2}, {Avoidant: -1}, {}, {Avoidant: 1}, {Avoidant: 2},
		}),
	},
	{
		Text: "My ideal relationship keeps reinventing itself.",
		Options: likert([5]TraitDelta{
			{Openness: -2}, {Openness: -1}, {}, {Openness: 1}, {Openness: 2},
		}),
	},
	{
		Text: "I keep promises to a partner even when keeping them costs me.",
		Options: likert([5]TraitDelta{
			{Conscientiousness: -2}, {Conscientiousness: -1}, {}, {Conscientiousness: 1}, {Conscientiousness: 2},
		}),
	},
	{
		Text: "At a party, I am the one introducing my partner to everyone.",
		Options: likert([5]TraitDelta{
			{Extraversion: -2}, {Extraversion: -1}, {}, {Extraversion: 1}, {Extraversion: 2},
		}),
	},
	{
		Text: "My partner's comfort matters more to me than winning a debate.",
		Options: likert([5]TraitDelta{
			{Agreeableness: -2}, {Agreeableness: -1}, {}, {Agreeableness: 1}, {Agreeableness: 2},
		}),
	},
	{
		Text: "Small relationship wobbles feel like catastrophes to me.",
		Options: likert([5]TraitDelta{
			{Neuroticism: -2}, {Neuroticism: -1}, {}, {Neuroticism: 1}, {Neuroticism: 2},
		}),
	},
	{
		Text: "I re-read my own texts wondering if I said something wrong.",
		Options: likert([5]TraitDelta{
			{Anxious: -2}, {Anxious: -1}, {}, {Anxious: 1}, {Anxious: 2},
		}),
	},
	{
		Text: "Talking about feelings drains me.",
		Options: likert([5]TraitDelta{
			{Avoidant: -2}, {Avoidant: -1}, {}, {Avoidant: 1}, {Avoidant: 2},
		}),
	},
	{
		Text: "Jealousy gets the better of me more often than I admit.",
		Options: likert([5]TraitDelta{
			{Neuroticism: -1, Anxious: -1}, {Neuroticism: -1}, {}, {Neuroticism: 1, Anxious: 1}, {Neuroticism: 1, Anxious: 1},
		}),
	},
	{
		Text: "When a partner pulls away, I chase.",
		Options: likert([5]TraitDelta{
			{Anxious: -2}, {Anxious: -1}, {}, {Anxious: 1}, {Anxious: 2},
		}),
	},
	{
		Text: "Depending on someone makes me uncomfortable.",
		Options: likert([5]TraitDelta{
			{Avoidant: -2}, {Avoidant: -1}, {}, {Avoidant: 1}, {Avoidant: 2},
		}),
	},
	{
		Text: "A spontaneous weekend trip beats a quiet night in.",
		Options: likert([5]TraitDelta{
			{Openness: -1, Extraversion: -1}, {Openness: -1}, {}, {Openness: 1}, {Openness: 1, Extraversion: 1},
		}),
	},
}

// Questions devuelve el set fijo de preguntas del quiz.
func Questions() []Question {
	return questions
}
