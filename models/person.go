package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person is a director or actor referenced from movies.
type Person struct {
	ID        string `json:"id" gorm:"type:varchar(36);primaryKey"`
	FirstName string `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(100);not null"`
	Photo     string `json:"photo" gorm:"type:varchar(255)"`
	Bio       string `json:"bio" gorm:"type:text"`
}

// PersonRequest is the person create/update payload.
type PersonRequest struct {
	FirstName string `json:"first_name" binding:"required" example:"Quentin"`
	LastName  string `json:"last_name" binding:"required" example:"Tarantino"`
	Photo     string `json:"photo" example:"/uploads/persons/qt.jpg"`
	Bio       string `json:"bio"`
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (Person) TableName() string {
	return "persons"
}
