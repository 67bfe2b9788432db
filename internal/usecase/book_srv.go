package usecase

import (
	"context"
	"time"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/internal/data/repository"
	"bookstore-backend/internal/dto/request"
	"bookstore-backend/internal/dto/response"

	"go.uber.org/zap"
)

type BookService interface {
	List(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.BookResponse], error)
	GetByID(ctx context.Context, id int64) (*response.BookResponse, error)
	Create(ctx context.Context, req *request.BookRequest, adminUserID int64) (*response.BookResponse, error)
	Update(ctx context.Context, id int64, req *request.BookRequest) (*response.BookResponse, error)
	Delete(ctx context.Context, id int64) error
}

type bookService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookService(repo *repository.Repository, log *zap.Logger) BookService {
	return &bookService{
		repo: repo,
		log:  log.With(zap.String("service", "book")),
	}
}

func (bs *bookService) List(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.BookResponse], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	total, err := bs.repo.Book.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * perPage
	books, err := bs.repo.Book.FindAll(ctx, perPage, offset)
	if err != nil {
		return nil, err
	}

	items := make([]response.BookResponse, 0, len(books))
	for _, b := range books {
		items = append(items, response.BookToResponse(b))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (bs *bookService) GetByID(ctx context.Context, id int64) (*response.BookResponse, error) {
	book, err := bs.repo.Book.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	resp := response.BookToResponse(book)
	return &resp, nil
}

func (bs *bookService) Create(ctx context.Context, req *request.BookRequest, adminUserID int64) (*response.BookResponse, error) {
	now := time.Now()
	book := &entity.Book{
		Name:          req.Name,
		Author:        req.Author,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Quantity:      req.Quantity,
		Image:         req.Image,
		AdminUserID:   adminUserID,
	}
	book.CreatedAt = now
	book.UpdatedAt = now

	if book.DiscountPrice == 0 {
		book.DiscountPrice = book.Price
	}

	if err := bs.repo.Book.Create(ctx, book); err != nil {
		return nil, err
	}

	bs.log.Info("Book created",
		zap.Int64("book_id", book.ID),
		zap.String("name", book.Name),
		zap.Int64("admin_user_id", adminUserID),
	)

	resp := response.BookToResponse(book)
	return &resp, nil
}

func (bs *bookService) Update(ctx context.Context, id int64, req *request.BookRequest) (*response.BookResponse, error) {
	book, err := bs.repo.Book.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	book.Name = req.Name
	book.Author = req.Author
	book.Description = req.Description
	book.Price = req.Price
	book.DiscountPrice = req.DiscountPrice
	book.Quantity = req.Quantity
	book.Image = req.Image
	book.UpdatedAt = time.Now()

	if book.DiscountPrice == 0 {
		book.DiscountPrice = book.Price
	}

	if err := bs.repo.Book.Update(ctx, book); err != nil {
		return nil, err
	}

	bs.log.Info("Book updated", zap.Int64("book_id", id))

	resp := response.BookToResponse(book)
	return &resp, nil
}

func (bs *bookService) Delete(ctx context.Context, id int64) error {
	deleted, err := bs.repo.Book.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}

	bs.log.Info("Book deleted", zap.Int64("book_id", id))
	return nil
}
