// Tests for order assignment and atomic bulk reorder.
package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// createIntention inserts an intention with the given order request
// (negative means assign-next) and returns its id.
func createIntention(t *testing.T, b *Backend, text string, order int) int64 {
	t.Helper()
	id, err := b.Intentions().Create(&types.Intention{Text: text, Active: true, Order: order})
	require.NoError(t, err)
	return id
}

func TestNextOrderAssignment(t *testing.T) {
	b := setupBackend(t)

	createIntention(t, b, "first", -1)
	createIntention(t, b, "second", -1)
	createIntention(t, b, "third", -1)

	got, err := b.Intentions().List(true)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 0, got[0].Order)
	assert.Equal(t, 1, got[1].Order)
	assert.Equal(t, 2, got[2].Order)
}

func TestNextOrderAfterExplicitOrder(t *testing.T) {
	b := setupBackend(t)

	createIntention(t, b, "placed high", 10)
	id := createIntention(t, b, "appended", -1)

	in, err := b.Intentions().Get(id)
	require.NoError(t, err)
	assert.Equal(t, 11, in.Order, "assignment must continue from the maximum")
}

func TestNextOrderCountsInactiveRows(t *testing.T) {
	b := setupBackend(t)

	id, err := b.Intentions().Create(&types.Intention{Text: "paused", Active: false, Order: -1})
	require.NoError(t, err)
	require.NotZero(t, id)

	appended := createIntention(t, b, "next", -1)
	in, err := b.Intentions().Get(appended)
	require.NoError(t, err)
	assert.Equal(t, 1, in.Order)
}

func TestReorderApplies(t *testing.T) {
	b := setupBackend(t)

	a := createIntention(t, b, "a", -1)
	bID := createIntention(t, b, "b", -1)
	c := createIntention(t, b, "c", -1)

	err := b.Intentions().Reorder([]types.OrderAssignment{
		{ID: a, Order: 2},
		{ID: bID, Order: 0},
		{ID: c, Order: 1},
	})
	require.NoError(t, err)

	got, err := b.Intentions().List(true)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Text)
	assert.Equal(t, "c", got[1].Text)
	assert.Equal(t, "a", got[2].Text)
}

func TestReorderMissingRowRollsBack(t *testing.T) {
	b := setupBackend(t)

	a := createIntention(t, b, "a", -1)
	bID := createIntention(t, b, "b", -1)

	err := b.Intentions().Reorder([]types.OrderAssignment{
		{ID: a, Order: 5},
		{ID: 9999, Order: 6},
		{ID: bID, Order: 7},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))

	// No assignment from the failed batch may be visible.
	got, err := b.Intentions().List(true)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Order)
	assert.Equal(t, 1, got[1].Order)
}

func TestReorderEmptyIsNoOp(t *testing.T) {
	b := setupBackend(t)
	require.NoError(t, b.Intentions().Reorder(nil))
}
