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

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestCellSummaries_Postgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCellRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "leader_id", "is_active", "leader_name", "member_count"}).
		AddRow(1, "Betel", 7, true, "Joao", 4).
		AddRow(2, "Célula Teste", nil, true, nil, 0)
	mock.ExpectQuery(`LEFT JOIN members leaders ON leaders.id = cells.leader_id`).WillReturnRows(rows)

	got, err := repo.Summaries(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Joao", *got[0].LeaderName)
	assert.Nil(t, got[1].LeaderName)
	assert.Equal(t, int64(4), got[0].MemberCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCellSummaries_RejectsDanglingLeader(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCellRepository(db)

	// leader_id is set but the join found no leader row.
	rows := sqlmock.NewRows([]string{"id", "name", "leader_id", "is_active", "leader_name", "member_count"}).
		AddRow(1, "Betel", 7, true, nil, 4)
	mock.ExpectQuery(`FROM "cells"`).WillReturnRows(rows)

	_, err := repo.Summaries(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRow))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFinanceRepository_CreateTransactionRollsBack(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "financial_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectExec(`UPDATE "financial_accounts" SET "current_balance"=current_balance \+ \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	accountID := uint64(3)
	tx := sampleIncome(accountID)
	err = NewFinanceRepository(db).CreateTransaction(context.Background(), tx)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}
