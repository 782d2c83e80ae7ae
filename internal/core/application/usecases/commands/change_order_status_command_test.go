package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_Success(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(7, status.IdentifierByName(status.Approved))
	require.NoError(t, err)
	assert.Equal(t, 7, cmd.OrderID())
	assert.Equal(t, status.IdentifierByName(status.Approved), cmd.Target())
	assert.NoError(t, cmd.Validate())
}

func TestNewChangeOrderStatusCommand_AbsentTargetIsAllowed(t *testing.T) {
	// Resolution (and rejection of an absent target) happens in the handler.
	cmd, err := commands.NewChangeOrderStatusCommand(7, status.Identifier{})
	require.NoError(t, err)
	assert.True(t, cmd.Target().IsZero())
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	for _, orderID := range []int{0, -1} {
		_, err := commands.NewChangeOrderStatusCommand(orderID, status.IdentifierByID(2))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestChangeOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
