package models

import (
	"time"
)

type Customer struct {
	CustomerID       uint      `gorm:"primaryKey" json:"customer_id"`
	Name             string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone            string    `gorm:"type:varchar(20)" json:"phone"`
	Email            string    `gorm:"type:varchar(100)" json:"email"`
	RegistrationDate time.Time `gorm:"not null" json:"registration_date"`
}

// NewCustomer holds the fields accepted on registration.
type NewCustomer struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"max=20"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
}
