// AngelaMos | 2026
// dto.go

package user

type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5,max=128"`
	Name     string `json:"name"     validate:"required,min=1,max=100"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=5,max=128"`
}

// UserResponse never carries the password in any form.
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		Email: u.Email,
		Name:  u.Name,
	}
}
