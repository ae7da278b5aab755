package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AuthorizeIssuerRequest struct {
	Issuer string `json:"issuer"`
	Name   string `json:"name"`
}

type IssuerDTO struct {
	Identity     string `json:"identity"`
	Name         string `json:"name"`
	Authorized   bool   `json:"authorized"`
	AuthorizedAt uint64 `json:"authorized_at"`
}

type IssuerResponse struct {
	Status string    `json:"status"`
	Data   IssuerDTO `json:"data"`
}

type IssuerListResponse struct {
	Status string      `json:"status"`
	Data   []IssuerDTO `json:"data"`
}

type AddAdminRequest struct {
	Admin string `json:"admin"`
}

type AdminDTO struct {
	Identity string `json:"identity"`
	AddedAt  uint64 `json:"added_at"`
}

type AdminResponse struct {
	Status string   `json:"status"`
	Data   AdminDTO `json:"data"`
}

type CapabilityResponse struct {
	Status string `json:"status"`
	Data   struct {
		Identity         string `json:"identity"`
		IsOwner          bool   `json:"is_owner"`
		IsAdmin          bool   `json:"is_admin"`
		IssuerAuthorized bool   `json:"issuer_authorized"`
	} `json:"data"`
}
