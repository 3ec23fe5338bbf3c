package models

type Vendor struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	ContactPerson string  `json:"contact_person"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Country       string  `json:"country"`
	Description   string  `json:"description"`
	Website       string  `json:"website"`
	Status        string  `json:"status"`
	Rating        float64 `json:"rating"`
}

type NewVendor struct {
	Name          string
	Category      string
	ContactPerson string
	Email         string
	Phone         string
	Country       string
	Description   string
	Website       string
}

// VendorUpdate carries a partial update: nil fields keep their stored value.
type VendorUpdate struct {
	Name          *string
	Category      *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Country       *string
	Description   *string
	Website       *string
	Status        *string
	Rating        *float64
}
