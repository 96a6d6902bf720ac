package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-shop-backend/internal/sync"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestProductRepo_ListBarcodes(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewProductRepo(db)

	mock.ExpectQuery(`SELECT "barcode" FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"barcode"}).AddRow("A").AddRow("B"))

	barcodes, err := repo.ListBarcodes()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, barcodes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_UpdateStockByBarcode(t *testing.T) {
	t.Run("reports matched row", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewProductRepo(db)

		mock.ExpectExec(`UPDATE "products" SET`).
			WithArgs(decimal.NewFromFloat(12.5), 7, sqlmock.AnyArg(), "4780000").
			WillReturnResult(sqlmock.NewResult(0, 1))

		matched, err := repo.UpdateStockByBarcode(sync.StockUpdate{
			Barcode:   "4780000",
			Stock:     7,
			SellPrice: decimal.NewFromFloat(12.5),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown barcode matches nothing", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewProductRepo(db)

		mock.ExpectExec(`UPDATE "products" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		matched, err := repo.UpdateStockByBarcode(sync.StockUpdate{Barcode: "none"})
		require.NoError(t, err)
		assert.Zero(t, matched)
	})
}

func TestProductRepo_DeleteByBarcodes(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewProductRepo(db)

	mock.ExpectExec(`DELETE FROM "products" WHERE barcode IN`).
		WithArgs("A", "B").
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteByBarcodes([]string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_DeleteByBarcodes_EmptySliceIsNoop(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewProductRepo(db)

	deleted, err := repo.DeleteByBarcodes(nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query may reach the database")
}

func TestProductRepo_UpdateProduct_VanishedRowIsNoop(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewProductRepo(db)

	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProduct("gone", map[string]interface{}{"name_tm": "x"})
	assert.NoError(t, err)
}

func TestProductRepo_MissingBarcodes(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewProductRepo(db)

	mock.ExpectQuery(`SELECT "barcode" FROM "products" WHERE barcode IN`).
		WithArgs("A", "B", "C").
		WillReturnRows(sqlmock.NewRows([]string{"barcode"}).AddRow("A").AddRow("C"))

	missing, err := repo.MissingBarcodes([]string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
