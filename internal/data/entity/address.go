package entity

type Address struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"user_id"`
	FullName    string `db:"full_name" json:"full_name"`
	Phone       string `db:"phone" json:"phone"`
	AddressLine string `db:"address_line" json:"address_line"`
	PinCode     string `db:"pin_code" json:"pin_code"`
	City        string `db:"city" json:"city"`
	State       string `db:"state" json:"state"`
	Type        string `db:"type" json:"type"`
}
