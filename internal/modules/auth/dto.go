package auth

import "pardarsh/internal/domain"

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role"`
	LegalName    string `json:"legalName" binding:"required"`
	DOB          string `json:"dob"`
	PhoneNumber  string `json:"phoneNumber"`
	AadharNumber string `json:"aadharNumber"`
	Address      string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserPublic is the projection returned with a freshly issued token. The
// credential hash never appears in any projection.
type UserPublic struct {
	ID        int64       `json:"id"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	LegalName string      `json:"legalName"`
}

func toPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		LegalName: u.LegalName,
	}
}
