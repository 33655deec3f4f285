package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gr10greesh/E-commerce/models"
)

func TestCarts_Replace_CreatesCartLazily(t *testing.T) {
	db, mock := newTestDB(t)
	carts := NewCarts(db)

	mock.ExpectBegin()
	// No cart yet for this user.
	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id"}))
	mock.ExpectQuery(`INSERT INTO "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id"}).AddRow(5))
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	items := []models.CartItem{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	}
	cart, err := carts.Replace(context.Background(), "u1", items)
	require.NoError(t, err)
	assert.Equal(t, uint(5), cart.CartID)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, uint(5), cart.Items[0].CartID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarts_Replace_EmptySetClearsCart(t *testing.T) {
	db, mock := newTestDB(t)
	carts := NewCarts(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id"}).AddRow(5, "u1"))
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	// No insert: the replacement set is empty.
	mock.ExpectCommit()

	cart, err := carts.Replace(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarts_ByUser_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	carts := NewCarts(db)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id"}))

	_, err := carts.ByUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
