package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/application/usecases/commands"
)

func TestNewReleaseVehicleCommand(t *testing.T) {
	t.Run("should create command with valid order reference", func(t *testing.T) {
		cmd, err := commands.NewReleaseVehicleCommand("ORD-1042")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "ORD-1042", cmd.OrderID())
	})

	t.Run("should fail with blank order reference", func(t *testing.T) {
		_, err := commands.NewReleaseVehicleCommand("   ")

		require.Error(t, err)
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.ReleaseVehicleCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrReleaseVehicleCommandIsNotConstructed)
	})
}
