package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/internal/data/repository"
	"bookstore-backend/internal/mail"
	"bookstore-backend/internal/otp"

	"go.uber.org/zap"
)

// In-memory fakes backing the service tests. They mirror the contracts of
// the pgx repositories, including ErrDuplicate on unique violations and
// nil results for missing rows.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrDuplicate
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return fmt.Errorf("user %s not found", email)
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

type fakeBookRepo struct {
	mu     sync.Mutex
	nextID int64
	books  map[int64]*entity.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[int64]*entity.Book)}
}

func (f *fakeBookRepo) Create(_ context.Context, book *entity.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	book.ID = f.nextID
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeBookRepo) FindByID(_ context.Context, id int64) (*entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Book
	for id := int64(1); id <= f.nextID; id++ {
		if b, ok := f.books[id]; ok {
			cp := *b
			all = append(all, &cp)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeBookRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.books)), nil
}

func (f *fakeBookRepo) Exists(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.books[id]
	return ok, nil
}

func (f *fakeBookRepo) Update(_ context.Context, book *entity.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.books[book.ID]; !ok {
		return fmt.Errorf("book %d not found", book.ID)
	}
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.books[id]; !ok {
		return false, nil
	}
	delete(f.books, id)
	return true, nil
}

type fakeCartRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*entity.CartItem
	books  *fakeBookRepo
}

func newFakeCartRepo(books *fakeBookRepo) *fakeCartRepo {
	return &fakeCartRepo{items: make(map[int64]*entity.CartItem), books: books}
}

func (f *fakeCartRepo) FindByUserAndBook(_ context.Context, userID, bookID int64) (*entity.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.UserID == userID && it.BookID == bookID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) Create(_ context.Context, item *entity.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.UserID == item.UserID && it.BookID == item.BookID {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	item.ID = f.nextID
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartRepo) Update(_ context.Context, item *entity.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.ID]; !ok {
		return fmt.Errorf("cart item %d not found", item.ID)
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return fmt.Errorf("cart item %d not found", id)
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCartRepo) ListUnpurchased(_ context.Context, userID int64) ([]*entity.CartItemDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var details []*entity.CartItemDetail
	for id := int64(1); id <= f.nextID; id++ {
		it, ok := f.items[id]
		if !ok || it.UserID != userID || it.IsPurchased {
			continue
		}
		d := &entity.CartItemDetail{CartItem: *it}
		if f.books != nil {
			if b, ok := f.books.books[it.BookID]; ok {
				d.BookName = b.Name
				d.Author = b.Author
				d.Image = b.Image
				d.Price = b.Price
				d.DiscountPrice = b.DiscountPrice
			}
		}
		details = append(details, d)
	}
	return details, nil
}

type fakeWishlistRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*entity.WishlistItem
	books  *fakeBookRepo
}

func newFakeWishlistRepo(books *fakeBookRepo) *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[int64]*entity.WishlistItem), books: books}
}

func (f *fakeWishlistRepo) Exists(_ context.Context, userID, bookID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.UserID == userID && it.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWishlistRepo) Create(_ context.Context, item *entity.WishlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.UserID == item.UserID && it.BookID == item.BookID {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	item.ID = f.nextID
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeWishlistRepo) Delete(_ context.Context, userID, bookID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, it := range f.items {
		if it.UserID == userID && it.BookID == bookID {
			delete(f.items, id)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWishlistRepo) ListByUser(_ context.Context, userID int64) ([]*entity.WishlistItemDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var details []*entity.WishlistItemDetail
	for id := int64(1); id <= f.nextID; id++ {
		it, ok := f.items[id]
		if !ok || it.UserID != userID {
			continue
		}
		d := &entity.WishlistItemDetail{WishlistItem: *it}
		if f.books != nil {
			if b, ok := f.books.books[it.BookID]; ok {
				d.BookName = b.Name
				d.Author = b.Author
				d.Image = b.Image
				d.Price = b.Price
				d.DiscountPrice = b.DiscountPrice
			}
		}
		details = append(details, d)
	}
	return details, nil
}

type fakeAddressRepo struct {
	mu        sync.Mutex
	nextID    int64
	addresses map[int64]*entity.Address
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[int64]*entity.Address)}
}

func (f *fakeAddressRepo) Create(_ context.Context, address *entity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	address.ID = f.nextID
	cp := *address
	f.addresses[address.ID] = &cp
	return nil
}

func (f *fakeAddressRepo) FindByID(_ context.Context, id int64) (*entity.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.addresses[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAddressRepo) FindByUser(_ context.Context, userID int64) ([]*entity.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Address
	for id := int64(1); id <= f.nextID; id++ {
		if a, ok := f.addresses[id]; ok && a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) Update(_ context.Context, address *entity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.addresses[address.ID]; !ok {
		return fmt.Errorf("address %d not found", address.ID)
	}
	cp := *address
	f.addresses[address.ID] = &cp
	return nil
}

func (f *fakeAddressRepo) Delete(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.addresses[id]; !ok {
		return false, nil
	}
	delete(f.addresses, id)
	return true, nil
}

type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	codes []string
	fail  bool
}

func (f *fakeMailer) SendOTP(_ context.Context, recipient, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("smtp connection refused")
	}
	f.sent = append(f.sent, recipient)
	f.codes = append(f.codes, code)
	return nil
}

var _ mail.Sender = (*fakeMailer)(nil)

func newTestRepository() (*repository.Repository, *fakeBookRepo, *fakeCartRepo, *fakeWishlistRepo) {
	books := newFakeBookRepo()
	carts := newFakeCartRepo(books)
	wishes := newFakeWishlistRepo(books)
	return &repository.Repository{
		User:     newFakeUserRepo(),
		Book:     books,
		Cart:     carts,
		Wishlist: wishes,
		Address:  newFakeAddressRepo(),
	}, books, carts, wishes
}

func newTestIssuer() *otp.Issuer {
	return otp.NewIssuer(otp.NewMemoryStore(), 5*time.Minute, zap.NewNop())
}

func seedBook(t *testing.T, books *fakeBookRepo, name string, price, discount float64) int64 {
	book := &entity.Book{
		Name:          name,
		Author:        "Test Author",
		Price:         price,
		DiscountPrice: discount,
		Quantity:      10,
		AdminUserID:   1,
	}
	t.Helper()
	if err := books.Create(context.Background(), book); err != nil {
		t.Fatalf("seed book: %v", err)
	}
	return book.ID
}
