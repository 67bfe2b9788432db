package request

type BookRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	Author        string  `json:"author" validate:"required,min=1,max=100"`
	Description   *string `json:"description,omitempty"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	DiscountPrice float64 `json:"discount_price" validate:"gte=0,ltefield=Price"`
	Quantity      int     `json:"quantity" validate:"gte=0"`
	Image         *string `json:"image,omitempty"`
}
