package response

import (
	"time"

	"bookstore-backend/internal/data/entity"
)

type BookResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Author        string    `json:"author"`
	Description   *string   `json:"description,omitempty"`
	Price         float64   `json:"price"`
	DiscountPrice float64   `json:"discount_price"`
	Quantity      int       `json:"quantity"`
	Image         *string   `json:"image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func BookToResponse(book *entity.Book) BookResponse {
	return BookResponse{
		ID:            book.ID,
		Name:          book.Name,
		Author:        book.Author,
		Description:   book.Description,
		Price:         book.Price,
		DiscountPrice: book.DiscountPrice,
		Quantity:      book.Quantity,
		Image:         book.Image,
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
}
