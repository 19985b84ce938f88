package repository_test

import (
	"context"
	"testing"

	"teamboard/internal/repository"
	"teamboard/internal/workflow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestCardRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	cardID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "cards" WHERE id = .*`).
		WithArgs(cardID).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	card, err := cardRepo.GetByID(context.Background(), cardID)

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, card)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_ApplyMove_CommitsAllPlacements(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	readyID, doingID := uuid.New(), uuid.New()
	movedID, stayingID := uuid.New(), uuid.New()
	assignee := uuid.New()

	update := workflow.MoveUpdate{
		CardID:         movedID,
		TargetColumnID: doingID,
		Placements: []workflow.Placement{
			{CardID: stayingID, ColumnID: readyID, Position: 0},
			{CardID: movedID, ColumnID: doingID, Position: 0},
		},
		AssigneeID: &assignee,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cards" SET`).
		WithArgs(readyID, 0, sqlmock.AnyArg(), stayingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "cards" SET`).
		WithArgs(doingID, 0, sqlmock.AnyArg(), movedID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "cards" SET "assignee_id"`).
		WithArgs(assignee, sqlmock.AnyArg(), movedID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := cardRepo.ApplyMove(context.Background(), update)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_ApplyMove_RollsBackOnFailure(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	colID := uuid.New()
	first, second := uuid.New(), uuid.New()

	update := workflow.MoveUpdate{
		CardID:         first,
		TargetColumnID: colID,
		Placements: []workflow.Placement{
			{CardID: first, ColumnID: colID, Position: 0},
			{CardID: second, ColumnID: colID, Position: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cards" SET`).
		WithArgs(colID, 0, sqlmock.AnyArg(), first).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "cards" SET`).
		WithArgs(colID, 1, sqlmock.AnyArg(), second).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// Act
	err := cardRepo.ApplyMove(context.Background(), update)

	// Assert
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_SetApproved_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	cardID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cards" SET "is_approved"`).
		WithArgs(true, sqlmock.AnyArg(), cardID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := cardRepo.SetApproved(context.Background(), cardID, true)

	// Assert
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
