package chatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentions(t *testing.T) {
	m := Mentions("tell me about @AC", 17, portfolio)
	require.NotNil(t, m)
	assert.Equal(t, 14, m.Start)
	assert.Len(t, m.Suggestions, 2)

	// prefix, not substring
	assert.Nil(t, Mentions("@bank", 5, portfolio))

	// a space after the @ closes the mention
	assert.Nil(t, Mentions("@acme mining", 12, portfolio))

	// only text before the cursor counts
	m = Mentions("@g and more", 2, portfolio)
	require.NotNil(t, m)
	assert.Equal(t, "Globex", m.Suggestions[0].AccountName)

	assert.Nil(t, Mentions("no mention", 10, portfolio))

	// bare @ lists everyone
	m = Mentions("@", 1, portfolio)
	require.NotNil(t, m)
	assert.Len(t, m.Suggestions, 3)
}

func TestComplete(t *testing.T) {
	out, cursor := complete("hi @ac there", 3, 6, "Acme Mining")
	assert.Equal(t, "hi @Acme Mining  there", out)
	assert.Equal(t, 16, cursor)
}
