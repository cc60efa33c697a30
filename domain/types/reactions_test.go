// domain/types/reactions_test.go
package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithReplacesSameUserReaction(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	list := ReactionList{}.With(alice, "👍").With(bob, "❤️")
	require.Len(t, list, 2)

	list = list.With(alice, "😂")
	require.Len(t, list, 2)
	assert.Contains(t, list, Reaction{UserID: alice, Emoji: "😂"})
	assert.Contains(t, list, Reaction{UserID: bob, Emoji: "❤️"})
	assert.NotContains(t, list, Reaction{UserID: alice, Emoji: "👍"})
}

func TestReactionListScanRoundTrip(t *testing.T) {
	alice := uuid.New()
	list := ReactionList{{UserID: alice, Emoji: "👍"}}

	v, err := list.Value()
	require.NoError(t, err)

	var out ReactionList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, list, out)

	var empty ReactionList
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)

	var nilList ReactionList
	v, err = nilList.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
