// Tests for the singleton profile row.
package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func TestProfileGetCreatesDefault(t *testing.T) {
	b := setupBackend(t)

	got, err := b.Profile().Get()
	require.NoError(t, err)
	require.NotZero(t, got.ProfileID)
	assert.Equal(t, types.DefaultProfile().Name, got.Name)

	// A second read returns the same row, not another default.
	again, err := b.Profile().Get()
	require.NoError(t, err)
	assert.Equal(t, got.ProfileID, again.ProfileID)
}

func TestProfileUpdateReplaces(t *testing.T) {
	b := setupBackend(t)

	email := "hello@example.com"
	updated, err := b.Profile().Update(&types.Profile{
		Name:   "Ada",
		Title:  "Maker",
		Bio:    "I make things.",
		Email:  &email,
		Social: &types.SocialLinks{GitHub: "ada"},
	})
	require.NoError(t, err)
	require.NotZero(t, updated.ProfileID)

	got, err := b.Profile().Get()
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	require.NotNil(t, got.Email)
	assert.Equal(t, email, *got.Email)
	require.NotNil(t, got.Social)
	assert.Equal(t, "ada", got.Social.GitHub)
	assert.Nil(t, got.Avatar)
}

func TestProfileUpdateCreatesWhenEmpty(t *testing.T) {
	b := setupBackend(t)

	// Update before any Get: the singleton row must be created.
	updated, err := b.Profile().Update(&types.Profile{Name: "First", Title: "One", Bio: "bio"})
	require.NoError(t, err)
	require.NotZero(t, updated.ProfileID)

	got, err := b.Profile().Get()
	require.NoError(t, err)
	assert.Equal(t, updated.ProfileID, got.ProfileID)
	assert.Equal(t, "First", got.Name)
}

func TestProfileUpdateRejectsEmptyName(t *testing.T) {
	b := setupBackend(t)

	_, err := b.Profile().Update(&types.Profile{Name: ""})
	assert.True(t, errors.Is(err, types.ErrInvalidName))
}
