package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeVisibleTo(t *testing.T) {
	public := &Recipe{ID: "recipe-1", OwnerID: "user-alice", Visibility: VisibilityPublic}
	private := &Recipe{ID: "recipe-2", OwnerID: "user-alice", Visibility: VisibilityPrivate}

	assert.True(t, public.VisibleTo("user-alice"))
	assert.True(t, public.VisibleTo("user-bob"))
	assert.True(t, private.VisibleTo("user-alice"))
	assert.False(t, private.VisibleTo("user-bob"))
}
