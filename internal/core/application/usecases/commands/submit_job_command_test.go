package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
)

func TestNewSubmitJobCommand(t *testing.T) {
	phone, err := kernel.NewPhone("901234567")
	require.NoError(t, err)
	point, err := kernel.NewGeoPoint(41.311, 69.240)
	require.NoError(t, err)
	chatID := int64(555)

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewSubmitJobCommand(
			kernel.JobID(100), "Order #100", 15000, 120000, &phone, &chatID, &point)
		require.NoError(t, err)

		assert.Equal(t, kernel.JobID(100), cmd.JobID())
		assert.Equal(t, "Order #100", cmd.NoticeText())
		assert.Equal(t, int64(15000), cmd.DeliveryFee())
		assert.Equal(t, int64(120000), cmd.DishSubtotal())
		assert.Equal(t, &phone, cmd.CustomerPhone())
		assert.Equal(t, &chatID, cmd.CustomerChatID())
		assert.Equal(t, &point, cmd.Location())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("optional fields absent", func(t *testing.T) {
		cmd, err := commands.NewSubmitJobCommand(
			kernel.JobID(100), "Order #100", 0, 0, nil, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, cmd.CustomerPhone())
		assert.Nil(t, cmd.CustomerChatID())
		assert.Nil(t, cmd.Location())
	})

	t.Run("zero job id", func(t *testing.T) {
		_, err := commands.NewSubmitJobCommand(kernel.JobID(0), "Order", 0, 0, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("empty notice text", func(t *testing.T) {
		_, err := commands.NewSubmitJobCommand(kernel.JobID(100), "", 0, 0, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("negative fee", func(t *testing.T) {
		_, err := commands.NewSubmitJobCommand(kernel.JobID(100), "Order", -1, 0, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("not constructed", func(t *testing.T) {
		var cmd commands.SubmitJobCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrSubmitJobCommandIsNotConstructed)
	})
}
