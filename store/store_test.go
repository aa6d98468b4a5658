package store

import (
	"testing"

	"mindhuddle_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeededStore_FixtureShape verifies the demo dataset is loaded with
// its mirrored relationships intact.
func TestSeededStore_FixtureShape(t *testing.T) {
	s := NewSeededAppStore()

	err := s.View(func(c *Collections) error {
		users := c.Users()
		require.Len(t, users, 5)
		assert.Equal(t, DefaultUserID, users[0].ID, "fixture order should survive")

		alex, err := c.User(DefaultUserID)
		require.NoError(t, err)
		kwame, err := c.User("u2")
		require.NoError(t, err)
		assert.Contains(t, alex.Connections, "u2")
		assert.Contains(t, kwame.Connections, DefaultUserID, "connections are symmetric")

		elena, err := c.User("u3")
		require.NoError(t, err)
		assert.Contains(t, alex.ReceivedRequests, "u3")
		assert.Contains(t, elena.SentRequests, DefaultUserID, "pending requests are mirrored")

		g1, err := c.Group("g1")
		require.NoError(t, err)
		for _, admin := range g1.Admins {
			assert.True(t, g1.IsMember(admin), "admins must be members")
		}
		return nil
	})
	require.NoError(t, err)
}

// TestConversationBetween_OrderInsensitive verifies pair lookup ignores
// participant order.
func TestConversationBetween_OrderInsensitive(t *testing.T) {
	s := NewSeededAppStore()

	err := s.View(func(c *Collections) error {
		a, ok := c.ConversationBetween(DefaultUserID, "u2")
		require.True(t, ok)
		b, ok := c.ConversationBetween("u2", DefaultUserID)
		require.True(t, ok)
		assert.Equal(t, a.ID, b.ID)
		return nil
	})
	require.NoError(t, err)
}

// TestReset_RestoresFixtures verifies Reset discards mutations and
// reseeds the original dataset.
func TestReset_RestoresFixtures(t *testing.T) {
	s := NewSeededAppStore()

	err := s.Update(func(c *Collections) error {
		c.AddUser(&models.UserProfile{ID: "u99", Name: "Ghost", Email: "ghost@example.com"})
		alex, err := c.User(DefaultUserID)
		if err != nil {
			return err
		}
		alex.Connections = nil
		return nil
	})
	require.NoError(t, err)

	s.Reset()

	err = s.View(func(c *Collections) error {
		_, err := c.User("u99")
		assert.ErrorIs(t, err, models.ErrNotFound)
		alex, err := c.User(DefaultUserID)
		require.NoError(t, err)
		assert.Equal(t, []string{"u2"}, alex.Connections)
		return nil
	})
	require.NoError(t, err)
}

// TestNotFound_Wrapping verifies missing lookups wrap ErrNotFound across
// collections.
func TestNotFound_Wrapping(t *testing.T) {
	s := NewAppStore()

	err := s.View(func(c *Collections) error {
		_, err := c.User("nope")
		assert.ErrorIs(t, err, models.ErrNotFound)
		_, err = c.Conversation("nope")
		assert.ErrorIs(t, err, models.ErrNotFound)
		_, err = c.Post("nope")
		assert.ErrorIs(t, err, models.ErrNotFound)
		_, err = c.Event("nope")
		assert.ErrorIs(t, err, models.ErrNotFound)
		_, err = c.Group("nope")
		assert.ErrorIs(t, err, models.ErrNotFound)
		return nil
	})
	require.NoError(t, err)
}
