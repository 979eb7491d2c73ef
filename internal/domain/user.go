package domain

import "time"

type Role string

const (
	RoleContractor Role = "Contractor"
	RoleOfficial   Role = "Government Official"
	RoleGeneral    Role = "General User"
)

func (r Role) Valid() bool {
	switch r {
	case RoleContractor, RoleOfficial, RoleGeneral:
		return true
	}
	return false
}

type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         Role       `json:"role" gorm:"type:varchar(32);default:'General User'"`
	LegalName    string     `json:"legalName"`
	DOB          *time.Time `json:"dob,omitempty"`
	PhoneNumber  string     `json:"phoneNumber,omitempty"`
	AadharNumber string     `json:"aadharNumber,omitempty"`
	Address      string     `json:"address,omitempty"`
	FaithScore   float64    `json:"faithScore"`
	CreatedAt    time.Time  `json:"createdAt"`
}
