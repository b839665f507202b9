// Package domain contains persistence models for warning letters.
package domain

import (
	"context"
	"strings"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
)

// Status represents the severity of a warning letter.
type Status string

const (
	StatusWarning    Status = "warning"
	StatusSuspension Status = "suspension"
)

func (s Status) Valid() bool {
	return s == StatusWarning || s == StatusSuspension
}

type WarningLetter struct {
	LetterID    int64     `gorm:"column:letter_id;primaryKey;autoIncrement"`
	CustomerID  int64     `gorm:"column:customer_id;not null;index"`
	WarningDate time.Time `gorm:"column:warning_date;type:date;not null"`
	Status      Status    `gorm:"column:status;type:text;not null"`
	Message     string    `gorm:"column:message;not null"`
}

// TableName sets the database table name.
func (WarningLetter) TableName() string { return "warning_letters" }

// New validates and builds a WarningLetter.
func New(customerID int64, warningDate time.Time, status Status, message string) (WarningLetter, error) {
	if customerID <= 0 {
		return WarningLetter{}, apperr.Constraintf("customer_id must be a positive integer")
	}
	if warningDate.IsZero() {
		return WarningLetter{}, apperr.Validationf("invalid warning date")
	}
	if !status.Valid() {
		return WarningLetter{}, apperr.Validationf("warning letter status must be warning or suspension")
	}
	if strings.TrimSpace(message) == "" {
		return WarningLetter{}, apperr.Validationf("warning letter message must be a non-empty string")
	}
	return WarningLetter{
		CustomerID:  customerID,
		WarningDate: warningDate,
		Status:      status,
		Message:     message,
	}, nil
}

type Service interface {
	List(ctx context.Context, customerID int64) ([]WarningLetter, error)
	GetByID(ctx context.Context, id int64) (WarningLetter, error)
	Delete(ctx context.Context, id int64) error
	// IssueOverdue scans customers whose last payment predates the configured
	// thresholds and writes one letter per offender at the matching severity.
	IssueOverdue(ctx context.Context) ([]WarningLetter, error)
}
