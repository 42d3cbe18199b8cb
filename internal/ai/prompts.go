package ai

import (
	"bytes"
	"fmt"
	"text/template"
)

// PromptData holds the values rendered into a review prompt.
type PromptData struct {
	PullRequest   string
	Title         string
	Author        string
	Score         int
	CodeQuality   int
	TestCoverage  int
	Documentation int
	PRDescription int
	CodeStyle     int
	Impact        int
	Feedback      string
}

func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

const (
	reviewPromptTemplateEN = `# Task
  Act as a friendly open-source maintainer reviewing a contribution to a bounty program.

  # Contribution
  - Pull request: {{.PullRequest}}
{{- if .Title}}
  - Title: {{.Title}}
{{- end}}
{{- if .Author}}
  - Author: {{.Author}}
{{- end}}

  # Scores (0-100)
  - Overall: {{.Score}}
  - Code quality: {{.CodeQuality}}
  - Test coverage: {{.TestCoverage}}
  - Documentation: {{.Documentation}}
  - PR description: {{.PRDescription}}
  - Code style: {{.CodeStyle}}
  - Impact: {{.Impact}}

  # Automated feedback
  {{.Feedback}}

  # Rules
  1. Write at most 5 short bullet points in Markdown.
  2. Do not repeat the scores and do not propose new ones.
  3. Be encouraging and concrete. Focus on the lowest categories.
  4. Answer in English.`

	reviewPromptTemplateES = `# Tarea
  Actuá como un maintainer open-source amable que revisa una contribución a un programa de bounties.

  # Contribución
  - Pull request: {{.PullRequest}}
{{- if .Title}}
  - Título: {{.Title}}
{{- end}}
{{- if .Author}}
  - Autor: {{.Author}}
{{- end}}

  # Puntajes (0-100)
  - General: {{.Score}}
  - Calidad de código: {{.CodeQuality}}
  - Cobertura de tests: {{.TestCoverage}}
  - Documentación: {{.Documentation}}
  - Descripción del PR: {{.PRDescription}}
  - Estilo de código: {{.CodeStyle}}
  - Impacto: {{.Impact}}

  # Feedback automático
  {{.Feedback}}

  # Reglas
  1. Escribí como máximo 5 viñetas cortas en Markdown.
  2. No repitas los puntajes ni propongas otros.
  3. Sé alentador y concreto. Enfocate en las categorías más bajas.
  4. Respondé en español.`
)

// GetReviewPromptTemplate returns the reviewer prompt for the given language.
func GetReviewPromptTemplate(lang string) string {
	switch lang {
	case "es":
		return reviewPromptTemplateES
	default:
		return reviewPromptTemplateEN
	}
}
