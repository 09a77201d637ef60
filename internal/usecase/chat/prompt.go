package chat

import "strings"

// PromptParams carries everything needed to render one persona prompt.
// All fields are plain values so the prompt can be built after the
// originating database session is gone.
type PromptParams struct {
	StaffName           string
	Role                string
	Personality         string
	Expertise           []string
	CompanyName         string
	CompanyDescription  string
	KnowledgeContext    string
	ConversationContext string
	ImageAdvisory       string
}

// BuildSystemPrompt renders the persona system prompt. Pure function:
// identical params always produce identical output.
func BuildSystemPrompt(p PromptParams) string {
	personality := p.Personality
	if personality == "" {
		personality = "not available"
	}
	expertise := "not available"
	if len(p.Expertise) > 0 {
		expertise = strings.Join(p.Expertise, ", ")
	}

	var parts []string
	parts = append(parts, "You are "+p.StaffName+", a "+p.Role+" at "+p.CompanyName+".")
	if p.CompanyDescription != "" {
		parts = append(parts, p.CompanyDescription+"\n")
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, "Your Personality: "+personality)
	parts = append(parts, "Your Expertise: "+expertise+"\n")

	parts = append(parts, "Company Knowledge:")
	if p.KnowledgeContext != "" {
		parts = append(parts, p.KnowledgeContext+"\n")
	} else {
		parts = append(parts, "No specific context available.\n")
	}

	parts = append(parts, "Meeting Context:")
	if p.ConversationContext != "" {
		parts = append(parts, p.ConversationContext+"\n")
	} else {
		parts = append(parts, "No previous context.\n")
	}

	if p.ImageAdvisory != "" {
		parts = append(parts, p.ImageAdvisory+"\n")
	}

	parts = append(parts, "\nRespond naturally as this character. Stay in character and provide helpful, "+
		"relevant responses based on your role and expertise. Be concise but informative.")

	return strings.Join(parts, "\n")
}
