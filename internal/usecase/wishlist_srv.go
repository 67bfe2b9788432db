package usecase

import (
	"context"
	"errors"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/internal/data/repository"
	"bookstore-backend/internal/dto/response"

	"go.uber.org/zap"
)

type WishlistService interface {
	AddToWishlist(ctx context.Context, userID, bookID int64) error
	RemoveFromWishlist(ctx context.Context, userID, bookID int64) (bool, error)
	MoveToCart(ctx context.Context, userID, bookID int64) error
	GetWishlistItems(ctx context.Context, userID int64) ([]response.WishlistItemResponse, error)
}

type wishlistService struct {
	repo  *repository.Repository
	locks *keyLock
	log   *zap.Logger
}

func NewWishlistService(repo *repository.Repository, locks *keyLock, log *zap.Logger) WishlistService {
	return &wishlistService{
		repo:  repo,
		locks: locks,
		log:   log.With(zap.String("service", "wishlist")),
	}
}

// AddToWishlist saves a book for later. The book must exist and may appear
// at most once per user.
func (ws *wishlistService) AddToWishlist(ctx context.Context, userID, bookID int64) error {
	exists, err := ws.repo.Book.Exists(ctx, bookID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}

	key := pairKey(userID, bookID)
	ws.locks.lock(key)
	defer ws.locks.unlock(key)

	present, err := ws.repo.Wishlist.Exists(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if present {
		return ErrAlreadyInWishlist
	}

	item := &entity.WishlistItem{UserID: userID, BookID: bookID}
	if err := ws.repo.Wishlist.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyInWishlist
		}
		return err
	}

	ws.log.Info("Wishlist entry created",
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
	)
	return nil
}

// RemoveFromWishlist deletes the entry and reports whether one existed.
func (ws *wishlistService) RemoveFromWishlist(ctx context.Context, userID, bookID int64) (bool, error) {
	removed, err := ws.repo.Wishlist.Delete(ctx, userID, bookID)
	if err != nil {
		return false, err
	}

	if removed {
		ws.log.Info("Wishlist entry removed",
			zap.Int64("user_id", userID),
			zap.Int64("book_id", bookID),
		)
	}
	return removed, nil
}

// MoveToCart removes the wishlist entry and puts the book into the cart in
// one logical step, under the same pair lock as the cart mutations. If the
// book already sits in the cart its quantity goes up by one; a purchased
// line aborts the whole move with the entry intact.
func (ws *wishlistService) MoveToCart(ctx context.Context, userID, bookID int64) error {
	key := pairKey(userID, bookID)
	ws.locks.lock(key)
	defer ws.locks.unlock(key)

	present, err := ws.repo.Wishlist.Exists(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if !present {
		return ErrNotInWishlist
	}

	if err := addCartLine(ctx, ws.repo.Cart, ws.log, userID, bookID); err != nil {
		return err
	}

	if _, err := ws.repo.Wishlist.Delete(ctx, userID, bookID); err != nil {
		return err
	}

	ws.log.Info("Wishlist entry moved to cart",
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
	)
	return nil
}

func (ws *wishlistService) GetWishlistItems(ctx context.Context, userID int64) ([]response.WishlistItemResponse, error) {
	details, err := ws.repo.Wishlist.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]response.WishlistItemResponse, 0, len(details))
	for _, d := range details {
		items = append(items, response.WishlistItemToResponse(d))
	}

	return items, nil
}
