package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
)

func TestNewGetLoyaltyAccountQuery(t *testing.T) {
	phone, err := kernel.NewPhone("+998901112233")
	require.NoError(t, err)

	query, err := queries.NewGetLoyaltyAccountQuery(phone)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())

	equal, err := query.Phone().IsEqual(phone)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestNewGetLoyaltyAccountQuery_ZeroPhone(t *testing.T) {
	var phone kernel.Phone

	_, err := queries.NewGetLoyaltyAccountQuery(phone)

	require.Error(t, err)
}

func TestGetLoyaltyAccountQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.GetLoyaltyAccountQuery

	err := query.Validate()

	require.ErrorIs(t, err, queries.ErrGetLoyaltyAccountQueryIsNotConstructed)
}
