package request

type WishlistRequest struct {
	BookID int64 `json:"book_id" validate:"required,min=1"`
}
