package response

import (
	"bookstore-backend/internal/data/entity"
)

type WishlistItemResponse struct {
	BookID        int64   `json:"book_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Image         *string `json:"image,omitempty"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discount_price"`
}

func WishlistItemToResponse(item *entity.WishlistItemDetail) WishlistItemResponse {
	return WishlistItemResponse{
		BookID:        item.BookID,
		Title:         item.BookName,
		Author:        item.Author,
		Image:         item.Image,
		Price:         item.Price,
		DiscountPrice: item.DiscountPrice,
	}
}
