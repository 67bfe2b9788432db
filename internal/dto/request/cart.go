package request

type AddToCartRequest struct {
	BookID int64 `json:"book_id" validate:"required,min=1"`
}

type UpdateCartRequest struct {
	BookID int64 `json:"book_id" validate:"required,min=1"`
	// Quantity of zero or below removes the line
	Quantity    int  `json:"quantity"`
	IsPurchased bool `json:"is_purchased"`
}
