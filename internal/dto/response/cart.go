package response

import (
	"bookstore-backend/internal/data/entity"
)

type CartLineResponse struct {
	BookID        int64   `json:"book_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Image         *string `json:"image,omitempty"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discount_price"`
	TotalPrice    float64 `json:"total_price"`
}

// CartLineToResponse annotates the joined line with its aggregate price:
// quantity times the discounted unit price.
func CartLineToResponse(item *entity.CartItemDetail) CartLineResponse {
	return CartLineResponse{
		BookID:        item.BookID,
		Title:         item.BookName,
		Author:        item.Author,
		Image:         item.Image,
		Quantity:      item.Quantity,
		Price:         item.Price,
		DiscountPrice: item.DiscountPrice,
		TotalPrice:    float64(item.Quantity) * item.DiscountPrice,
	}
}
