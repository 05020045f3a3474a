package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestCustomerDirectory_RegisterAndResolve(t *testing.T) {
	ctx := t.Context()
	directory := memory.NewCustomerDirectory()

	phone, err := kernel.NewPhone("+998901112233")
	require.NoError(t, err)
	require.NoError(t, directory.Register(ctx, 555, phone))

	// Same number in a different spelling resolves to the same chat.
	variant, err := kernel.NewPhone("90 111-22-33")
	require.NoError(t, err)

	chatID, err := directory.Resolve(ctx, variant)
	require.NoError(t, err)
	assert.Equal(t, int64(555), chatID)
}

func TestCustomerDirectory_Resolve_Unknown(t *testing.T) {
	directory := memory.NewCustomerDirectory()

	phone, err := kernel.NewPhone("+998909998877")
	require.NoError(t, err)

	_, err = directory.Resolve(t.Context(), phone)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCustomerDirectory_Register_OverwritesChat(t *testing.T) {
	ctx := t.Context()
	directory := memory.NewCustomerDirectory()

	phone, err := kernel.NewPhone("+998901112233")
	require.NoError(t, err)

	require.NoError(t, directory.Register(ctx, 555, phone))
	require.NoError(t, directory.Register(ctx, 777, phone))

	chatID, err := directory.Resolve(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, int64(777), chatID)
}

func TestCustomerDirectory_Register_ZeroChatRejected(t *testing.T) {
	directory := memory.NewCustomerDirectory()

	phone, err := kernel.NewPhone("+998901112233")
	require.NoError(t, err)

	require.Error(t, directory.Register(t.Context(), 0, phone))
}
