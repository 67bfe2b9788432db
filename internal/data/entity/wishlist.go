package entity

// WishlistItem is unique per (user, book) pair.
type WishlistItem struct {
	ID     int64 `db:"id" json:"id"`
	UserID int64 `db:"user_id" json:"user_id"`
	BookID int64 `db:"book_id" json:"book_id"`
}

// WishlistItemDetail is a wishlist entry joined with its book summary.
type WishlistItemDetail struct {
	WishlistItem
	BookName      string  `db:"book_name" json:"book_name"`
	Author        string  `db:"author" json:"author"`
	Image         *string `db:"image" json:"image,omitempty"`
	Price         float64 `db:"price" json:"price"`
	DiscountPrice float64 `db:"discount_price" json:"discount_price"`
}
