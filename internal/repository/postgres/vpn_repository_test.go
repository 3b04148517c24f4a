//go:build !integration

package postgres

import (
	"context"
	"errors"
	"testing"

	"vpnAdvisor/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestVPNRepositoryFindAll(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewVPNRepository(gdb)

	rows := sqlmock.NewRows([]string{
		"id", "name", "country", "speed", "price", "max_devices",
		"logging_policy", "encryption", "handshake_encryption", "trial_available",
	}).
		AddRow(1, "Alpha VPN", "Germany", 12.5, 9.99, 5, "no_logs", "AES-256", "RSA-4096", true).
		AddRow(2, "Beta VPN", "Panama", 44.0, 3.49, 10, "partial_logs", "ChaCha20", "ECDHE-RSA", false)

	mock.ExpectQuery(`SELECT \* FROM "vpn_services" ORDER BY name asc`).
		WillReturnRows(rows)

	services, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)

	assert.Equal(t, "Alpha VPN", services[0].Name)
	assert.Equal(t, 9.99, services[0].Price)
	assert.True(t, services[0].TrialAvailable)
	assert.Equal(t, "ChaCha20", services[1].Encryption)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVPNRepositoryFindAllQueryError(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewVPNRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "vpn_services"`).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find VPN services")
}

func TestVPNRepositoryFindAllCancelledContext(t *testing.T) {
	gdb, _ := newMockDB(t)
	repo := NewVPNRepository(gdb)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVPNRepositoryUpsertAll(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewVPNRepository(gdb)

	services := []domain.VPNService{
		{
			Name: "Alpha VPN", Country: "Germany",
			Speed: 12.5, Price: 9.99, MaxDevices: 5,
			LoggingPolicy: "no_logs", Encryption: "AES-256",
			HandshakeEncryption: "RSA-4096", TrialAvailable: true,
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "vpn_services" .* ON CONFLICT \("name"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.UpsertAll(context.Background(), services)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVPNRepositoryUpsertAllEmptyIsNoop(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewVPNRepository(gdb)

	err := repo.UpsertAll(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
