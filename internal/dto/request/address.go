package request

type AddressRequest struct {
	FullName    string `json:"full_name" validate:"required,min=1,max=100"`
	Phone       string `json:"phone" validate:"required,min=10,max=15"`
	AddressLine string `json:"address_line" validate:"required,min=1,max=255"`
	PinCode     string `json:"pin_code" validate:"required,min=4,max=10"`
	City        string `json:"city" validate:"required,min=1,max=100"`
	State       string `json:"state" validate:"required,min=1,max=100"`
	Type        string `json:"type" validate:"required,oneof=Home Work Other"`
}
