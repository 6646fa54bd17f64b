package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMatchCanonicalizesPair(t *testing.T) {
	forward := NewMatch("3", "7")
	backward := NewMatch("7", "3")

	assert.Equal(t, "3", forward.User1ID)
	assert.Equal(t, "7", forward.User2ID)
	assert.Equal(t, "3", backward.User1ID)
	assert.Equal(t, "7", backward.User2ID)
	assert.NotEmpty(t, forward.MatchID)
}

func TestCanonicalPair(t *testing.T) {
	user1, user2 := CanonicalPair("beto", "ana")
	assert.Equal(t, "ana", user1)
	assert.Equal(t, "beto", user2)
}
