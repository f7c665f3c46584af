package notification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates unread notification", func(t *testing.T) {
		n, err := New(uuid.New(), KindLowStock, "Blue Shirt is low", "3 left in stock")
		require.NoError(t, err)
		assert.False(t, n.IsRead())
		assert.Nil(t, n.ReadAt)
	})

	t.Run("rejects nil recipient", func(t *testing.T) {
		_, err := New(uuid.Nil, KindAnnouncement, "title", "")
		assert.Error(t, err)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := New(uuid.New(), KindAnnouncement, "", "")
		assert.Error(t, err)
	})
}

func TestMarkRead(t *testing.T) {
	t.Run("records read timestamp", func(t *testing.T) {
		n, err := New(uuid.New(), KindSettlement, "Payout completed", "")
		require.NoError(t, err)

		n.MarkRead()
		assert.True(t, n.IsRead())
		require.NotNil(t, n.ReadAt)
	})

	t.Run("marking twice keeps first timestamp", func(t *testing.T) {
		n, err := New(uuid.New(), KindSettlement, "Payout completed", "")
		require.NoError(t, err)

		n.MarkRead()
		first := *n.ReadAt
		n.MarkRead()
		assert.Equal(t, first, *n.ReadAt)
	})
}
