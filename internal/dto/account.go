package dto

// AccountRequest is the JSON body for POST /register and POST /login.
// Field rules live in the services; the transport only decodes.
type AccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountResponse is the account as returned to clients. The stored
// password travels back on register/login, matching the service contract
// of returning the stored account unchanged.
type AccountResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
