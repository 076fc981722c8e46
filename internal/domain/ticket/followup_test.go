package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFollowUp(t *testing.T) {
	t.Run("creates follow-up without sequence number", func(t *testing.T) {
		fu, err := NewFollowUp(5, 1, false, "any update?", nil)

		require.NoError(t, err)
		assert.Equal(t, uint(5), fu.RootID())
		assert.Equal(t, uint(1), fu.CreatorID())
		assert.False(t, fu.IsMedUser())
		assert.Zero(t, fu.SequenceNumber())
	})

	t.Run("snapshots med role", func(t *testing.T) {
		fu, err := NewFollowUp(5, 9, true, "taking this one", nil)

		require.NoError(t, err)
		assert.True(t, fu.IsMedUser())
	})

	t.Run("rejects missing root", func(t *testing.T) {
		_, err := NewFollowUp(0, 1, false, "desc", nil)
		assert.ErrorContains(t, err, "root ticket ID is required")
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewFollowUp(5, 1, false, "", nil)
		assert.ErrorContains(t, err, "description is required")
	})
}

func TestFollowUp_AssignSequenceNumber(t *testing.T) {
	fu, err := NewFollowUp(5, 1, false, "desc", nil)
	require.NoError(t, err)

	require.NoError(t, fu.AssignSequenceNumber(1))
	assert.Equal(t, 1, fu.SequenceNumber())

	t.Run("never reassigned", func(t *testing.T) {
		err := fu.AssignSequenceNumber(2)
		assert.ErrorContains(t, err, "already assigned")
		assert.Equal(t, 1, fu.SequenceNumber())
	})

	t.Run("must be positive", func(t *testing.T) {
		other, err := NewFollowUp(5, 1, false, "desc", nil)
		require.NoError(t, err)
		assert.Error(t, other.AssignSequenceNumber(0))
	})
}

func TestFollowUp_Ownership(t *testing.T) {
	fu, err := NewFollowUp(5, 1, false, "desc", nil)
	require.NoError(t, err)

	assert.True(t, fu.IsOwnedBy(1))
	assert.False(t, fu.IsOwnedBy(9))
}

func TestReconstructFollowUp(t *testing.T) {
	now := time.Now()

	t.Run("requires assigned sequence", func(t *testing.T) {
		_, err := ReconstructFollowUp(1, 5, 1, false, 0, "d", nil, now, now)
		assert.ErrorContains(t, err, "sequence number must be positive")
	})

	t.Run("round-trips stored fields", func(t *testing.T) {
		ref := "ticket_files/att_xyz.pdf"
		fu, err := ReconstructFollowUp(1, 5, 9, true, 3, "d", &ref, now, now)

		require.NoError(t, err)
		assert.Equal(t, 3, fu.SequenceNumber())
		assert.True(t, fu.IsMedUser())
		require.NotNil(t, fu.Attachment())
		assert.Equal(t, ref, *fu.Attachment())
	})
}
