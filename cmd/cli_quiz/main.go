package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"love-by-flavour/internal/flavour"
)

// Runner de terminal para el quiz: corre el clasificador puro, sin cuenta,
// sin base de datos y sin red.
func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("===== Love by Flavour =====")
	fmt.Printf("Responde las %d preguntas con un numero del 1 al 5.\n\n", flavour.QuestionCount)

	questions := flavour.Questions()
	answers := make([]int, 0, len(questions))
	for i, q := range questions {
		fmt.Printf("[%d/%d] %s\n", i+1, len(questions), q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  [%d] %s\n", j+1, opt.Text)
		}
		answers = append(answers, readAnswer(reader))
		fmt.Println()
	}

	traits, err := flavour.Score(answers)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	result := flavour.ClassifyVector(traits)

	profile, ok := flavour.ProfileFor(result)
	if !ok {
		fmt.Printf("Tu sabor: %s\n", result)
		return
	}

	fmt.Printf("Tu sabor: %s (%s)\n", profile.Label, profile.Tagline)
	fmt.Println(profile.Summary)
	fmt.Println("\nGreen flags:")
	for _, f := range profile.GreenFlags {
		fmt.Printf("  + %s\n", f)
	}
	fmt.Println("Red flags:")
	for _, f := range profile.RedFlags {
		fmt.Printf("  - %s\n", f)
	}

	fmt.Println("\nPerfil de rasgos (0-10):")
	fmt.Printf("  Apertura: %d  Responsabilidad: %d  Extraversion: %d  Amabilidad: %d\n",
		traits.Openness, traits.Conscientiousness, traits.Extraversion, traits.Agreeableness)
	fmt.Printf("  Neuroticismo: %d  Apego ansioso: %d  Apego evitativo: %d\n",
		traits.Neuroticism, traits.Anxious, traits.Avoidant)
}

// readAnswer lee 1-5 y lo devuelve como indice 0-4. Reintenta hasta que
// la entrada sea valida.
func readAnswer(reader *bufio.Reader) int {
	for {
		fmt.Print("Respuesta [1-5]: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nEntrada cerrada, saliendo.")
			os.Exit(1)
		}
		line = strings.TrimSpace(line)
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > 5 {
			fmt.Println("Opcion invalida.")
			continue
		}
		return n - 1
	}
}
