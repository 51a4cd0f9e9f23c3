package handler

type createItemRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required,oneof=Catering Florist Decoration Lighting"`
}

type updateItemRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"  validate:"omitempty,gt=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type requestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Completed Cancelled"`
}

// vendorProfileResponse joins the vendor profile with its owning account.
type vendorProfileResponse struct {
	ID               string `json:"id"`
	CompanyName      string `json:"company_name"`
	Category         string `json:"category,omitempty"`
	MembershipStatus string `json:"membership_status"`
	Name             string `json:"name"`
	Email            string `json:"email"`
}
