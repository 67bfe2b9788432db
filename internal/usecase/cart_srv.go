package usecase

import (
	"context"
	"errors"
	"fmt"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/internal/data/repository"
	"bookstore-backend/internal/dto/response"

	"go.uber.org/zap"
)

type CartService interface {
	AddToCart(ctx context.Context, userID, bookID int64) error
	GetUserCart(ctx context.Context, userID int64) ([]response.CartLineResponse, error)
	UpdateCartItem(ctx context.Context, userID, bookID int64, quantity int, isPurchased bool) error
	RemoveFromCart(ctx context.Context, userID, bookID int64) (bool, error)
}

type cartService struct {
	repo  *repository.Repository
	locks *keyLock
	log   *zap.Logger
}

func NewCartService(repo *repository.Repository, locks *keyLock, log *zap.Logger) CartService {
	return &cartService{
		repo:  repo,
		locks: locks,
		log:   log.With(zap.String("service", "cart")),
	}
}

// AddToCart puts one copy of the book into the user's cart. A second call
// for the same book increments the existing line instead of creating a
// duplicate. Lines already marked purchased are frozen.
func (cs *cartService) AddToCart(ctx context.Context, userID, bookID int64) error {
	exists, err := cs.repo.Book.Exists(ctx, bookID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}

	key := pairKey(userID, bookID)
	cs.locks.lock(key)
	defer cs.locks.unlock(key)

	return addCartLine(ctx, cs.repo.Cart, cs.log, userID, bookID)
}

// addCartLine runs the find-or-create-or-increment sequence. Callers must
// hold the pair lock.
func addCartLine(ctx context.Context, carts repository.CartRepository, log *zap.Logger, userID, bookID int64) error {
	item, err := carts.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return err
	}

	if item == nil {
		newItem := &entity.CartItem{
			UserID:   userID,
			BookID:   bookID,
			Quantity: 1,
		}
		err := carts.Create(ctx, newItem)
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost an insert race with another instance; retry as an
			// increment.
			item, err = carts.FindByUserAndBook(ctx, userID, bookID)
			if err != nil {
				return err
			}
			if item == nil {
				return fmt.Errorf("cart line for user %d book %d vanished", userID, bookID)
			}
		} else if err != nil {
			return err
		} else {
			log.Info("Cart line created",
				zap.Int64("user_id", userID),
				zap.Int64("book_id", bookID),
			)
			return nil
		}
	}

	if item.IsPurchased {
		return ErrPurchasedItem
	}

	item.Quantity++
	if err := carts.Update(ctx, item); err != nil {
		return err
	}

	log.Info("Cart line incremented",
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
		zap.Int("quantity", item.Quantity),
	)
	return nil
}

// GetUserCart returns the open lines of the user's cart with per-line
// totals computed from the discounted price.
func (cs *cartService) GetUserCart(ctx context.Context, userID int64) ([]response.CartLineResponse, error) {
	details, err := cs.repo.Cart.ListUnpurchased(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]response.CartLineResponse, 0, len(details))
	for _, d := range details {
		lines = append(lines, response.CartLineToResponse(d))
	}

	return lines, nil
}

// UpdateCartItem overwrites a line's quantity and purchased flag. A
// quantity of zero or below removes the line instead.
func (cs *cartService) UpdateCartItem(ctx context.Context, userID, bookID int64, quantity int, isPurchased bool) error {
	key := pairKey(userID, bookID)
	cs.locks.lock(key)
	defer cs.locks.unlock(key)

	item, err := cs.repo.Cart.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}

	if quantity <= 0 {
		if err := cs.repo.Cart.Delete(ctx, item.ID); err != nil {
			return err
		}
		cs.log.Info("Cart line removed via zero quantity",
			zap.Int64("user_id", userID),
			zap.Int64("book_id", bookID),
		)
		return nil
	}

	item.Quantity = quantity
	item.IsPurchased = isPurchased
	if err := cs.repo.Cart.Update(ctx, item); err != nil {
		return err
	}

	cs.log.Info("Cart line updated",
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
		zap.Int("quantity", quantity),
		zap.Bool("is_purchased", isPurchased),
	)
	return nil
}

// RemoveFromCart deletes the line and reports whether one existed. Removal
// of a purchased line is refused.
func (cs *cartService) RemoveFromCart(ctx context.Context, userID, bookID int64) (bool, error) {
	key := pairKey(userID, bookID)
	cs.locks.lock(key)
	defer cs.locks.unlock(key)

	item, err := cs.repo.Cart.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}
	if item.IsPurchased {
		return false, ErrPurchasedItem
	}

	if err := cs.repo.Cart.Delete(ctx, item.ID); err != nil {
		return false, err
	}

	cs.log.Info("Cart line removed",
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
	)
	return true, nil
}
