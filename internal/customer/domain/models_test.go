package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
)

func TestNewCustomer(t *testing.T) {
	customer, err := New("Margaret Hale", "14 Crampton Road", "5550137", 1, "m.hale@example.com", nil, StatusActive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.CustomerID != 0 {
		t.Fatalf("id must be store-assigned, got %d", customer.CustomerID)
	}
}

func TestNewCustomerOptionalFields(t *testing.T) {
	// Email, payment date and status may all be absent.
	customer, err := New("Margaret Hale", "14 Crampton Road", "5550137", 1, "", nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.Email != "" || customer.LastPaymentDate != nil {
		t.Fatalf("optional fields should stay empty: %+v", customer)
	}
}

func TestNewCustomerRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		cName   string
		address string
		phone   string
		areaID  int64
		email   string
		status  Status
		want    error
	}{
		{"short name", "M", "14 Crampton Road", "5550137", 1, "", "", apperr.ErrConstraint},
		{"long name", strings.Repeat("x", 51), "14 Crampton Road", "5550137", 1, "", "", apperr.ErrConstraint},
		{"short address", "Margaret Hale", "14", "5550137", 1, "", "", apperr.ErrConstraint},
		{"short phone", "Margaret Hale", "14 Crampton Road", "555", 1, "", "", apperr.ErrConstraint},
		{"long phone", "Margaret Hale", "14 Crampton Road", strings.Repeat("5", 16), 1, "", "", apperr.ErrConstraint},
		{"zero area", "Margaret Hale", "14 Crampton Road", "5550137", 0, "", "", apperr.ErrConstraint},
		{"bad email", "Margaret Hale", "14 Crampton Road", "5550137", 1, "not-an-email", "", apperr.ErrValidation},
		{"bad status", "Margaret Hale", "14 Crampton Road", "5550137", 1, "", Status("dormant"), apperr.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cName, tc.address, tc.phone, tc.areaID, tc.email, nil, tc.status)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
