package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The deletion order is load-bearing: children must go before the rows they
// reference or the wipe trips foreign-key constraints mid-transaction.
func TestResetTargetOrder(t *testing.T) {
	want := []string{
		"transaction_details",
		"transactions",
		"route_assignments",
		"user_stocks",
		"warehouse_stocks",
		"vehicles",
	}

	require.Len(t, resetTargets, len(want))
	for i, target := range resetTargets {
		assert.Equal(t, want[i], target.Name)
		assert.NotNil(t, target.Model)
	}
}

func TestResetTargetsExcludeMasterData(t *testing.T) {
	for _, target := range resetTargets {
		assert.NotEqual(t, "users", target.Name)
		assert.NotEqual(t, "stores", target.Name)
	}
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestResetClearsAllTablesInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	for _, target := range resetTargets {
		mock.ExpectExec(`DELETE FROM "` + target.Name + `"`).
			WillReturnResult(sqlmock.NewResult(0, 3))
	}
	mock.ExpectCommit()

	results, err := NewResetRepository(db).Reset(context.Background())
	require.NoError(t, err)
	require.Len(t, results, len(resetTargets))
	for i, res := range results {
		assert.Equal(t, resetTargets[i].Name, res.Table)
		assert.EqualValues(t, 3, res.Deleted)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

// A vehicles deletion that trips a constraint must roll back every table
// cleared before it. Both entry points (HTTP endpoint and the resetdata
// script) run through this repository.
func TestResetVehicleDeleteFailureRollsBackEverything(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	for _, target := range resetTargets[:len(resetTargets)-1] {
		mock.ExpectExec(`DELETE FROM "` + target.Name + `"`).
			WillReturnResult(sqlmock.NewResult(0, 5))
	}
	mock.ExpectExec(`DELETE FROM "vehicles"`).
		WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()

	results, err := NewResetRepository(db).Reset(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete vehicles")
	assert.Nil(t, results, "no per-table counts may leak from a rolled-back run")
	require.NoError(t, mock.ExpectationsWereMet())
}
