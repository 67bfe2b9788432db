package repository

import (
	"context"
	"fmt"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartRepository interface {
	FindByUserAndBook(ctx context.Context, userID, bookID int64) (*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	Update(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, id int64) error
	ListUnpurchased(ctx context.Context, userID int64) ([]*entity.CartItemDetail, error)
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (cr *cartRepository) FindByUserAndBook(ctx context.Context, userID, bookID int64) (*entity.CartItem, error) {
	query := `
		SELECT id, user_id, book_id, quantity, is_purchased
		FROM cart_items
		WHERE user_id = $1 AND book_id = $2
	`

	var item entity.CartItem
	err := cr.db.QueryRow(ctx, query, userID, bookID).Scan(
		&item.ID,
		&item.UserID,
		&item.BookID,
		&item.Quantity,
		&item.IsPurchased,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find cart item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("book_id", bookID),
		)
		return nil, fmt.Errorf("find cart item user %d book %d: %w", userID, bookID, err)
	}

	return &item, nil
}

// Create inserts a new cart line. The (user_id, book_id) unique constraint
// surfaces as ErrDuplicate.
func (cr *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (user_id, book_id, quantity, is_purchased)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := cr.db.QueryRow(ctx, query,
		item.UserID,
		item.BookID,
		item.Quantity,
		item.IsPurchased,
	).Scan(&item.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		cr.log.Error("Failed to create cart item",
			zap.Error(err),
			zap.Int64("user_id", item.UserID),
			zap.Int64("book_id", item.BookID),
		)
		return fmt.Errorf("create cart item user %d book %d: %w", item.UserID, item.BookID, err)
	}

	return nil
}

func (cr *cartRepository) Update(ctx context.Context, item *entity.CartItem) error {
	query := `
		UPDATE cart_items
		SET quantity = $2, is_purchased = $3
		WHERE id = $1
	`

	result, err := cr.db.Exec(ctx, query, item.ID, item.Quantity, item.IsPurchased)
	if err != nil {
		cr.log.Error("Failed to update cart item",
			zap.Error(err),
			zap.Int64("cart_item_id", item.ID),
		)
		return fmt.Errorf("update cart item %d: %w", item.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cart item %d not found", item.ID)
	}

	return nil
}

func (cr *cartRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cart_items WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete cart item",
			zap.Error(err),
			zap.Int64("cart_item_id", id),
		)
		return fmt.Errorf("delete cart item %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cart item %d not found", id)
	}

	return nil
}

// ListUnpurchased returns the open cart lines joined with book data.
// Purchased lines stay in the table but are excluded here.
func (cr *cartRepository) ListUnpurchased(ctx context.Context, userID int64) ([]*entity.CartItemDetail, error) {
	query := `
		SELECT c.id, c.user_id, c.book_id, c.quantity, c.is_purchased,
		       b.name, b.author, b.image, b.price, b.discount_price
		FROM cart_items c
		JOIN books b ON b.id = c.book_id
		WHERE c.user_id = $1 AND c.is_purchased = false
	`

	rows, err := cr.db.Query(ctx, query, userID)
	if err != nil {
		cr.log.Error("Failed to list cart items",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("list cart items for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []*entity.CartItemDetail
	for rows.Next() {
		var item entity.CartItemDetail
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.BookID,
			&item.Quantity,
			&item.IsPurchased,
			&item.BookName,
			&item.Author,
			&item.Image,
			&item.Price,
			&item.DiscountPrice,
		)
		if err != nil {
			cr.log.Error("Failed to scan cart row", zap.Error(err))
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cart rows: %w", err)
	}

	return items, nil
}
