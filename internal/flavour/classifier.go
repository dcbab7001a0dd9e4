package flavour

import "errors"

// QuestionCount es el largo fijo del set de preguntas.
const QuestionCount = 18

const optionCount = 5

// ErrInvalidAnswers indica respuestas con largo o indices fuera de rango.
var ErrInvalidAnswers = errors.New("invalid quiz answers")

// TraitVector acumula las 7 dimensiones de personalidad. Los valores crudos
// son sumas con signo; despues de Normalized quedan en la banda 0-10.
type TraitVector struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`
	Anxious           int `json:"anxious"`
	Avoidant          int `json:"avoidant"`
}

func (v *TraitVector) add(d TraitDelta) {
	v.Openness += d.Openness
	v.Conscientiousness += d.Conscientiousness
	v.Extraversion += d.Extraversion
	v.Agreeableness += d.Agreeableness
	v.Neuroticism += d.Neuroticism
	v.Anxious += d.Anxious
	v.Avoidant += d.Avoidant
}

// Normalized desplaza cada suma cruda a la banda 0-10: clamp(raw+5, 0, 10).
func (v TraitVector) Normalized() TraitVector {
	return TraitVector{
		Openness:          clampScore(v.Openness + 5),
		Conscientiousness: clampScore(v.Conscientiousness + 5),
		Extraversion:      clampScore(v.Extraversion + 5),
		Agreeableness:     clampScore(v.Agreeableness + 5),
		Neuroticism:       clampScore(v.Neuroticism + 5),
		Anxious:           clampScore(v.Anxious + 5),
		Avoidant:          clampScore(v.Avoidant + 5),
	}
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// Score acumula los deltas de cada respuesta y devuelve el vector normalizado.
func Score(answers []int) (TraitVector, error) {
	if len(answers) != QuestionCount {
		return TraitVector{}, ErrInvalidAnswers
	}
	var v TraitVector
	for i, a := range answers {
		if a < 0 || a >= optionCount {
			return TraitVector{}, ErrInvalidAnswers
		}
		v.add(questions[i].Options[a].Deltas)
	}
	return v.Normalized(), nil
}

// Classify mapea una secuencia de respuestas a su arquetipo de sabor.
// Determinista: la misma secuencia siempre produce el mismo sabor.
func Classify(answers []int) (Flavour, error) {
	v, err := Score(answers)
	if err != nil {
		return "", err
	}
	return ClassifyVector(v), nil
}

type rule struct {
	flavour Flavour
	match   func(v TraitVector) bool
}

// primaryCascade se evalua en orden y gana la primera regla que matchea.
// Las reglas NO son mutuamente excluyentes: el orden codifica prioridad
// entre arquetipos que se solapan y no debe reordenarse.
var primaryCascade = []rule{
	{Vanilla, func(v TraitVector) bool {
		return v.Conscientiousness >= 7 && v.Neuroticism <= 4 && v.Anxious <= 4
	}},
	{Strawberry, func(v TraitVector) bool {
		return v.Agreeableness >= 7 && v.Anxious >= 6 && v.Neuroticism >= 5
	}},
	{Chocolate, func(v TraitVector) bool {
		return v.Neuroticism >= 8 && v.Openness >= 7 && v.Anxious >= 7 && v.Conscientiousness <= 3
	}},
	{Banana, func(v TraitVector) bool {
		return v.Extraversion >= 7 && v.Openness >= 6 && v.Neuroticism <= 4
	}},
	{Mint, func(v TraitVector) bool {
		return v.Openness >= 8 && v.Avoidant >= 6
	}},
	{Cherry, func(v TraitVector) bool {
		return v.Extraversion >= 7 && v.Neuroticism >= 6 && v.Anxious >= 5
	}},
	{Bubblegum, func(v TraitVector) bool {
		return v.Agreeableness >= 6 && v.Anxious >= 7 && v.Conscientiousness <= 4
	}},
	{Coffee, func(v TraitVector) bool {
		return v.Conscientiousness >= 7 && v.Openness >= 6 && v.Avoidant >= 5
	}},
	{Watermelon, func(v TraitVector) bool {
		return v.Extraversion >= 8 && v.Agreeableness >= 6
	}},
	{Lemon, func(v TraitVector) bool {
		return v.Neuroticism >= 7 && v.Avoidant >= 6
	}},
	{Coconut, func(v TraitVector) bool {
		return v.Avoidant >= 7 && v.Extraversion <= 4
	}},
	{Grape, func(v TraitVector) bool {
		return v.Openness >= 7 && v.Agreeableness >= 6 && v.Neuroticism >= 5
	}},
	{Pineapple, func(v TraitVector) bool {
		return v.Extraversion >= 6 && v.Openness >= 6 && v.Anxious <= 4
	}},
	{Mango, func(v TraitVector) bool {
		return v.Openness >= 6 && v.Extraversion >= 6 && v.Neuroticism >= 5
	}},
}

// fallbackCascade cubre vectores que no matchean ninguna regla primaria,
// con umbrales de una sola dimension, mas gruesos, tambien en orden.
var fallbackCascade = []rule{
	{Cherry, func(v TraitVector) bool { return v.Neuroticism >= 7 }},
	{Strawberry, func(v TraitVector) bool { return v.Anxious >= 6 }},
	{Coconut, func(v TraitVector) bool { return v.Avoidant >= 6 }},
	{Mint, func(v TraitVector) bool { return v.Openness >= 7 }},
	{Vanilla, func(v TraitVector) bool { return v.Conscientiousness >= 6 }},
	{Watermelon, func(v TraitVector) bool { return v.Extraversion >= 6 }},
	{Strawberry, func(v TraitVector) bool { return v.Agreeableness >= 5 }},
}

// ClassifyVector evalua las cascadas en orden sobre un vector ya normalizado.
func ClassifyVector(v TraitVector) Flavour {
	for _, r := range primaryCascade {
		if r.match(v) {
			return r.flavour
		}
	}
	for _, r := range fallbackCascade {
		if r.match(v) {
			return r.flavour
		}
	}
	return Vanilla
}
