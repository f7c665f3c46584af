package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/storeops/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockOrderRepository creates a GormOrderRepository with a mocked SQL connection
func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormOrderRepository(gormDB), mock, mockDB
}

func orderRowColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "order_number", "status",
		"receipt_received", "total_amount", "final_amount", "delivery_fee",
		"created_by", "items",
	}
}

func TestGormOrderRepository_FindInPeriod(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	t.Run("membership follows creation time", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()
		createdAt := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
		// Delivered and receipted after the window closed; the order was
		// still created inside it and must be fetched.
		updatedAt := time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows(orderRowColumns()).AddRow(
			orderID, createdAt, updatedAt, "ORD-2201", "delivered",
			true, decimal.NewFromInt(700), decimal.NewFromInt(650),
			decimal.NewFromInt(50), uuid.New(), []byte(`[]`),
		)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE created_at BETWEEN \$1 AND \$2`).
			WithArgs(from, to).
			WillReturnRows(rows)

		orders, err := repo.FindInPeriod(context.Background(), from, to)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, orderID, orders[0].ID)
		assert.Equal(t, order.StatusDelivered, orders[0].Status)
		assert.True(t, orders[0].ReceiptReceived)
		assert.Equal(t, updatedAt, orders[0].UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty window returns no orders", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE created_at BETWEEN \$1 AND \$2`).
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows(orderRowColumns()))

		orders, err := repo.FindInPeriod(context.Background(), from, to)

		require.NoError(t, err)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates query errors", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE created_at BETWEEN \$1 AND \$2`).
			WithArgs(from, to).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.FindInPeriod(context.Background(), from, to)

		assert.Error(t, err)
	})
}
