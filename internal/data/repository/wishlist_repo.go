package repository

import (
	"context"
	"fmt"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/pkg/database"

	"go.uber.org/zap"
)

type WishlistRepository interface {
	Exists(ctx context.Context, userID, bookID int64) (bool, error)
	Create(ctx context.Context, item *entity.WishlistItem) error
	Delete(ctx context.Context, userID, bookID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.WishlistItemDetail, error)
}

type wishlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWishlistRepository(db database.PgxIface, log *zap.Logger) WishlistRepository {
	return &wishlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "wishlist")),
	}
}

func (wr *wishlistRepository) Exists(ctx context.Context, userID, bookID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE user_id = $1 AND book_id = $2)`

	var exists bool
	err := wr.db.QueryRow(ctx, query, userID, bookID).Scan(&exists)
	if err != nil {
		wr.log.Error("Failed to check wishlist entry",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("book_id", bookID),
		)
		return false, fmt.Errorf("check wishlist user %d book %d: %w", userID, bookID, err)
	}

	return exists, nil
}

// Create inserts a wishlist entry. The (user_id, book_id) unique constraint
// surfaces as ErrDuplicate, closing the duplicate-insert race the
// caller-side existence check leaves open.
func (wr *wishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	query := `
		INSERT INTO wishlist_items (user_id, book_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := wr.db.QueryRow(ctx, query, item.UserID, item.BookID).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		wr.log.Error("Failed to create wishlist entry",
			zap.Error(err),
			zap.Int64("user_id", item.UserID),
			zap.Int64("book_id", item.BookID),
		)
		return fmt.Errorf("create wishlist entry user %d book %d: %w", item.UserID, item.BookID, err)
	}

	return nil
}

// Delete removes the matching entry and reports whether a row was removed.
func (wr *wishlistRepository) Delete(ctx context.Context, userID, bookID int64) (bool, error) {
	query := `DELETE FROM wishlist_items WHERE user_id = $1 AND book_id = $2`

	result, err := wr.db.Exec(ctx, query, userID, bookID)
	if err != nil {
		wr.log.Error("Failed to delete wishlist entry",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("book_id", bookID),
		)
		return false, fmt.Errorf("delete wishlist entry user %d book %d: %w", userID, bookID, err)
	}

	return result.RowsAffected() > 0, nil
}

func (wr *wishlistRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.WishlistItemDetail, error) {
	query := `
		SELECT w.id, w.user_id, w.book_id,
		       b.name, b.author, b.image, b.price, b.discount_price
		FROM wishlist_items w
		JOIN books b ON b.id = w.book_id
		WHERE w.user_id = $1
	`

	rows, err := wr.db.Query(ctx, query, userID)
	if err != nil {
		wr.log.Error("Failed to list wishlist entries",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("list wishlist for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []*entity.WishlistItemDetail
	for rows.Next() {
		var item entity.WishlistItemDetail
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.BookID,
			&item.BookName,
			&item.Author,
			&item.Image,
			&item.Price,
			&item.DiscountPrice,
		)
		if err != nil {
			wr.log.Error("Failed to scan wishlist row", zap.Error(err))
			return nil, fmt.Errorf("scan wishlist row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		wr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate wishlist rows: %w", err)
	}

	return items, nil
}
