//go:build !integration

package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoringConfigRepositoryGetLatest(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewScoringConfigRepository(gdb)

	rows := sqlmock.NewRows([]string{
		"version", "w_fit", "w_speed_sim", "w_price_sim",
		"w_encryption", "w_logging", "fallback_threshold",
	}).AddRow(3, 0.6, 15.0, 15.0, 5.0, 5.0, 30.0)

	mock.ExpectQuery(`SELECT \* FROM "scoring_configs" ORDER BY version desc`).
		WillReturnRows(rows)

	cfg, found, err := repo.GetLatest(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, cfg.Version)
	assert.Equal(t, 0.6, cfg.WFit)
	assert.Equal(t, 30.0, cfg.FallbackThreshold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoringConfigRepositoryGetLatestNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewScoringConfigRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "scoring_configs"`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))

	_, found, err := repo.GetLatest(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}
