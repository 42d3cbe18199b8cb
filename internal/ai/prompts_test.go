package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPrompt(t *testing.T) {
	data := PromptData{
		PullRequest:   "acme/widget#42",
		Title:         "Add payouts",
		Author:        "octocat",
		Score:         91,
		CodeQuality:   100,
		TestCoverage:  67,
		Documentation: 95,
		PRDescription: 94,
		CodeStyle:     97,
		Impact:        96,
		Feedback:      "Great work!",
	}

	t.Run("Success - Render english review prompt", func(t *testing.T) {
		result, err := RenderPrompt("review", GetReviewPromptTemplate("en"), data)

		require.NoError(t, err)
		assert.Contains(t, result, "acme/widget#42")
		assert.Contains(t, result, "Title: Add payouts")
		assert.Contains(t, result, "Author: octocat")
		assert.Contains(t, result, "Test coverage: 67")
		assert.Contains(t, result, "Great work!")
		assert.Contains(t, result, "Answer in English.")
	})

	t.Run("Success - Render spanish review prompt", func(t *testing.T) {
		result, err := RenderPrompt("review", GetReviewPromptTemplate("es"), data)

		require.NoError(t, err)
		assert.Contains(t, result, "Cobertura de tests: 67")
		assert.Contains(t, result, "Respondé en español.")
	})

	t.Run("Success - Optional fields are omitted", func(t *testing.T) {
		result, err := RenderPrompt("review", GetReviewPromptTemplate("en"), PromptData{PullRequest: "a/b#1"})

		require.NoError(t, err)
		assert.NotContains(t, result, "Title:")
		assert.NotContains(t, result, "Author:")
	})

	t.Run("Error - Invalid template", func(t *testing.T) {
		_, err := RenderPrompt("broken", "{{.Missing", data)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing template broken")
	})

	t.Run("Error - Unknown field", func(t *testing.T) {
		_, err := RenderPrompt("unknown", "{{.Nope}}", data)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error executing template unknown")
	})
}

func TestGetReviewPromptTemplate(t *testing.T) {
	assert.Equal(t, reviewPromptTemplateEN, GetReviewPromptTemplate("en"))
	assert.Equal(t, reviewPromptTemplateES, GetReviewPromptTemplate("es"))
	assert.Equal(t, reviewPromptTemplateEN, GetReviewPromptTemplate("fr"))
}
