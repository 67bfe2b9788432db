package repository

import (
	"context"
	"fmt"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	FindByID(ctx context.Context, id int64) (*entity.Book, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Book, error)
	CountAll(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type bookRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookRepository(db database.PgxIface, log *zap.Logger) BookRepository {
	return &bookRepository{
		db:  db,
		log: log.With(zap.String("repository", "book")),
	}
}

func (br *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	query := `
		INSERT INTO books (name, author, description, price, discount_price,
		                   quantity, image, admin_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := br.db.QueryRow(ctx, query,
		book.Name,
		book.Author,
		book.Description,
		book.Price,
		book.DiscountPrice,
		book.Quantity,
		book.Image,
		book.AdminUserID,
		book.CreatedAt,
		book.UpdatedAt,
	).Scan(&book.ID)

	if err != nil {
		br.log.Error("Failed to create book",
			zap.Error(err),
			zap.String("name", book.Name),
		)
		return fmt.Errorf("create book %s: %w", book.Name, err)
	}

	return nil
}

func (br *bookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	query := `
		SELECT id, name, author, description, price, discount_price,
		       quantity, image, admin_user_id, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book entity.Book
	err := br.db.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Name,
		&book.Author,
		&book.Description,
		&book.Price,
		&book.DiscountPrice,
		&book.Quantity,
		&book.Image,
		&book.AdminUserID,
		&book.CreatedAt,
		&book.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find book by ID",
			zap.Error(err),
			zap.Int64("book_id", id),
		)
		return nil, fmt.Errorf("find book by ID %d: %w", id, err)
	}

	return &book, nil
}

func (br *bookRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Book, error) {
	query := `
		SELECT id, name, author, description, price, discount_price,
		       quantity, image, admin_user_id, created_at, updated_at
		FROM books
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := br.db.Query(ctx, query, limit, offset)
	if err != nil {
		br.log.Error("Failed to get all books",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all books limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var books []*entity.Book
	for rows.Next() {
		var book entity.Book
		err := rows.Scan(
			&book.ID,
			&book.Name,
			&book.Author,
			&book.Description,
			&book.Price,
			&book.DiscountPrice,
			&book.Quantity,
			&book.Image,
			&book.AdminUserID,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if err != nil {
			br.log.Error("Failed to scan book row", zap.Error(err))
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		br.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate books rows: %w", err)
	}

	return books, nil
}

func (br *bookRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM books`

	var count int64
	err := br.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		br.log.Error("Database error counting books", zap.Error(err))
		return 0, fmt.Errorf("count all books: %w", err)
	}

	return count, nil
}

func (br *bookRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`

	var exists bool
	err := br.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		br.log.Error("Failed to check book existence",
			zap.Error(err),
			zap.Int64("book_id", id),
		)
		return false, fmt.Errorf("check book %d exists: %w", id, err)
	}

	return exists, nil
}

func (br *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	query := `
		UPDATE books
		SET name = $2, author = $3, description = $4, price = $5,
		    discount_price = $6, quantity = $7, image = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := br.db.Exec(ctx, query,
		book.ID,
		book.Name,
		book.Author,
		book.Description,
		book.Price,
		book.DiscountPrice,
		book.Quantity,
		book.Image,
		book.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to update book",
			zap.Error(err),
			zap.Int64("book_id", book.ID),
		)
		return fmt.Errorf("update book %d: %w", book.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("book %d not found", book.ID)
	}

	return nil
}

func (br *bookRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM books WHERE id = $1`

	result, err := br.db.Exec(ctx, query, id)
	if err != nil {
		br.log.Error("Failed to delete book",
			zap.Error(err),
			zap.Int64("book_id", id),
		)
		return false, fmt.Errorf("delete book %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}
