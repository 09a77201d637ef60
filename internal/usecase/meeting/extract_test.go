package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionItems(t *testing.T) {
	raw := `[{"description":"Send the deck","assigned_to":"Maya"},{"description":"Book a room","assigned_to":null}]`
	drafts, err := ParseActionItems(raw)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Send the deck", drafts[0].Description)
	require.NotNil(t, drafts[0].AssignedTo)
	assert.Equal(t, "Maya", *drafts[0].AssignedTo)
	assert.Nil(t, drafts[1].AssignedTo)
}

func TestParseActionItems_Fenced(t *testing.T) {
	raw := "```json\n[{\"description\":\"Follow up\"}]\n```"
	drafts, err := ParseActionItems(raw)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Follow up", drafts[0].Description)
}

func TestParseActionItems_DropsBlankDescriptions(t *testing.T) {
	raw := `[{"description":"  "},{"description":"Real one"}]`
	drafts, err := ParseActionItems(raw)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Real one", drafts[0].Description)
}

func TestParseActionItems_Invalid(t *testing.T) {
	_, err := ParseActionItems("the meeting went well")
	assert.Error(t, err)

	drafts, err := ParseActionItems("")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}
