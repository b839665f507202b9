// Package domain contains persistence models for customers.
package domain

import (
	"regexp"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
)

// Status represents customer account states.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Customer struct {
	CustomerID      int64      `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Name            string     `gorm:"column:name;not null"`
	Address         string     `gorm:"column:address;not null"`
	Phone           string     `gorm:"column:phone;not null"`
	AreaID          int64      `gorm:"column:area_id;not null;index"`
	Email           string     `gorm:"column:email"`
	LastPaymentDate *time.Time `gorm:"column:last_payment_date;type:date"`
	Status          Status     `gorm:"column:status;type:text"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

// New validates and builds a Customer. Email, last payment date and status
// are optional; when present they must be well formed.
func New(name, address, phone string, areaID int64, email string, lastPaymentDate *time.Time, status Status) (Customer, error) {
	if len(name) < 2 || len(name) > 50 {
		return Customer{}, apperr.Constraintf("customer name must be 2-50 characters")
	}
	if len(address) < 5 || len(address) > 60 {
		return Customer{}, apperr.Constraintf("customer address must be 5-60 characters")
	}
	if len(phone) < 7 || len(phone) > 15 {
		return Customer{}, apperr.Constraintf("customer phone must be 7-15 characters")
	}
	if areaID <= 0 {
		return Customer{}, apperr.Constraintf("area_id must be a positive integer")
	}
	if email != "" && !emailPattern.MatchString(email) {
		return Customer{}, apperr.Validationf("invalid email address %q", email)
	}
	if status != "" && !status.Valid() {
		return Customer{}, apperr.Validationf("invalid customer status %q", status)
	}
	return Customer{
		Name:            name,
		Address:         address,
		Phone:           phone,
		AreaID:          areaID,
		Email:           email,
		LastPaymentDate: lastPaymentDate,
		Status:          status,
	}, nil
}
