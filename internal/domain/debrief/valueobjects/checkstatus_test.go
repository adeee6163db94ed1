package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckStatus(t *testing.T) {
	t.Run("empty string defaults to pending", func(t *testing.T) {
		cs, err := NewCheckStatus("")
		require.NoError(t, err)
		assert.Equal(t, CheckPending, cs)
	})

	t.Run("accepts all enum values", func(t *testing.T) {
		for _, s := range []string{"pending", "pass", "fail", "na"} {
			cs, err := NewCheckStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, cs.String())
		}
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := NewCheckStatus("maybe")
		assert.Error(t, err)
	})
}

func TestCheckStatusIsPass(t *testing.T) {
	assert.True(t, CheckPass.IsPass())
	assert.False(t, CheckFail.IsPass())
	assert.False(t, CheckNA.IsPass())
	assert.False(t, CheckPending.IsPass())
}

func TestNewFollowUpType(t *testing.T) {
	for _, s := range []string{
		"tech_coaching", "manager_review", "customer_callback",
		"field_task", "billing", "quality", "other",
	} {
		ft, err := NewFollowUpType(s)
		require.NoError(t, err)
		assert.Equal(t, s, ft.String())
	}

	_, err := NewFollowUpType("")
	assert.Error(t, err)
}
