package entity

type Book struct {
	Base
	Name          string  `db:"name" json:"name"`
	Author        string  `db:"author" json:"author"`
	Description   *string `db:"description" json:"description,omitempty"`
	Price         float64 `db:"price" json:"price"`
	DiscountPrice float64 `db:"discount_price" json:"discount_price"`
	Quantity      int     `db:"quantity" json:"quantity"`
	Image         *string `db:"image" json:"image,omitempty"`
	AdminUserID   int64   `db:"admin_user_id" json:"admin_user_id"`
}
