package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// --- Admin request types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin vendor user"`
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role"  validate:"omitempty,oneof=admin vendor user"`
}

type updateVendorRequest struct {
	CompanyName      string `json:"company_name"`
	Category         string `json:"category"          validate:"omitempty,oneof=Catering Florist Decoration Lighting"`
	MembershipStatus string `json:"membership_status" validate:"omitempty,oneof=pending active inactive"`
}

type membershipRequest struct {
	MembershipStatus string `json:"membership_status" validate:"required,oneof=pending active inactive"`
}
