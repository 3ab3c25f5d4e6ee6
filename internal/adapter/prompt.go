package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-smart-cards/models"
)

const defaultPromptLanguage = "Korean"

// buildStemPrompt renders the tutoring instructions for one target term.
func buildStemPrompt(language string, p models.StemPrompt) string {
	if strings.TrimSpace(language) == "" {
		language = defaultPromptLanguage
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert %s language tutor creating a quiz for a student.\n", language)
	fmt.Fprintf(&sb, "The student needs to learn the word '%s', which means '%s'.\n", p.Term, p.Meaning)
	fmt.Fprintf(&sb, "Crucially, the other multiple-choice options the student will see are: [%s].\n", strings.Join(p.Distractors, ", "))
	fmt.Fprintf(&sb, "Your task is to create a single, simple %s sentence with a blank space (___) for the word '%s'.\n", language, p.Term)
	fmt.Fprintf(&sb, "This sentence MUST contain enough specific context to make '%s' the ONLY logical answer among the choices. ", p.Term)
	sb.WriteString("The sentence must NOT work for the other options provided.\n")
	sb.WriteString("The sentence should be natural and easy for a beginner to understand.\n")
	fmt.Fprintf(&sb, "Do not provide the answer, any translations, or any other extra text. Your entire response must be ONLY the single %s sentence with the blank.\n", language)

	return sb.String()
}
