package response

// UserServiceValidate is the user service's answer to a token check.
type UserServiceValidate struct {
	IsValid bool   `json:"is_valid"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}
