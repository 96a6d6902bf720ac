package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shop-backend/pkg/apperr"
)

func TestDecrementStock(t *testing.T) {
	t.Run("matched row commits the decrement", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()

		mock.ExpectExec(`UPDATE "products" SET "stock"=stock - \$1 WHERE barcode = \$2 AND stock >= \$3`).
			WithArgs(3, "4780000", 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := decrementStock(db, StockDecrement{Barcode: "4780000", Quantity: 3})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient stock matches nothing and aborts", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()

		mock.ExpectExec(`UPDATE "products" SET "stock"=stock - \$1 WHERE barcode = \$2 AND stock >= \$3`).
			WithArgs(99, "4780000", 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := decrementStock(db, StockDecrement{Barcode: "4780000", Quantity: 99})
		assert.Equal(t, apperr.KindConsistency, apperr.KindOf(err))
	})
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	t.Run("updates existing order", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewOrderRepo(db)

		id, statusID := uuid.New(), uuid.New()
		mock.ExpectExec(`UPDATE "orders" SET`).
			WithArgs(statusID, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(id, statusID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown order id", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewOrderRepo(db)

		mock.ExpectExec(`UPDATE "orders" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(uuid.New(), uuid.New())
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
