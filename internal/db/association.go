package db

import "gorm.io/datatypes"

// Member is a board member or officer of the association.
type Member struct {
	Model
	Ordered
	Name     string  `gorm:"not null" json:"name"`
	Role     *string `json:"role"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	ImageURL *string `json:"imageUrl"`
}

// MembershipTier is a dues level with a list of benefits.
type MembershipTier struct {
	Model
	Ordered
	Name        string                      `gorm:"not null" json:"name"`
	Price       string                      `gorm:"not null" json:"price"`
	Description *string                     `gorm:"type:text" json:"description"`
	Benefits    datatypes.JSONSlice[string] `json:"benefits"`
}
