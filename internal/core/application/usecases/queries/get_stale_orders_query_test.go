package queries_test

import (
	"testing"
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStaleOrdersQuery_Success(t *testing.T) {
	cutoff := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	query, err := queries.NewGetStaleOrdersQuery(cutoff)
	require.NoError(t, err)
	assert.Equal(t, cutoff, query.OlderThan())
	assert.NoError(t, query.Validate())
}

func TestNewGetStaleOrdersQuery_ZeroCutoff(t *testing.T) {
	_, err := queries.NewGetStaleOrdersQuery(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetStaleOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetStaleOrdersQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetStaleOrdersQueryIsNotConstructed)
}

func TestNewGetStatusesQuery(t *testing.T) {
	assert.NoError(t, queries.NewGetStatusesQuery().Validate())

	var query queries.GetStatusesQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetStatusesQueryIsNotConstructed)
}
