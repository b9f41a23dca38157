// AngelaMos | 2026
// dto.go

package auth

type CreateTokenRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
