package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	params := PromptParams{
		StaffName:           "Maya",
		Role:                "Product Designer",
		Personality:         "direct and curious",
		Expertise:           []string{"ux", "branding"},
		CompanyName:         "Acme",
		CompanyDescription:  "Acme builds rockets.",
		KnowledgeContext:    "Company Knowledge Base:\n- Pricing: cheap",
		ConversationContext: "Recent conversation:\nUser: hi",
	}

	got := BuildSystemPrompt(params)
	assert.Contains(t, got, "You are Maya, a Product Designer at Acme.")
	assert.Contains(t, got, "Acme builds rockets.")
	assert.Contains(t, got, "Your Personality: direct and curious")
	assert.Contains(t, got, "Your Expertise: ux, branding")
	assert.Contains(t, got, "Company Knowledge:")
	assert.Contains(t, got, "- Pricing: cheap")
	assert.Contains(t, got, "Meeting Context:")
	assert.Contains(t, got, "User: hi")
	assert.Contains(t, got, "Stay in character")

	// pure: same input, same output
	assert.Equal(t, got, BuildSystemPrompt(params))
}

func TestBuildSystemPrompt_Placeholders(t *testing.T) {
	got := BuildSystemPrompt(PromptParams{
		StaffName:   "Sam",
		Role:        "Engineer",
		CompanyName: "the company",
	})
	assert.Contains(t, got, "Your Personality: not available")
	assert.Contains(t, got, "Your Expertise: not available")
	assert.Contains(t, got, "No specific context available.")
	assert.Contains(t, got, "No previous context.")
}
