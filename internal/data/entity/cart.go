package entity

// CartItem is unique per (user, book) pair. Once IsPurchased is set the
// line is frozen until an external order process clears it.
type CartItem struct {
	ID          int64 `db:"id" json:"id"`
	UserID      int64 `db:"user_id" json:"user_id"`
	BookID      int64 `db:"book_id" json:"book_id"`
	Quantity    int   `db:"quantity" json:"quantity"`
	IsPurchased bool  `db:"is_purchased" json:"is_purchased"`
}

// CartItemDetail is a cart line joined with its book data.
type CartItemDetail struct {
	CartItem
	BookName      string  `db:"book_name" json:"book_name"`
	Author        string  `db:"author" json:"author"`
	Image         *string `db:"image" json:"image,omitempty"`
	Price         float64 `db:"price" json:"price"`
	DiscountPrice float64 `db:"discount_price" json:"discount_price"`
}
