package domain

import (
	"errors"
	"testing"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
)

func TestNewPublication(t *testing.T) {
	pub, err := New("The Morning Herald", TypeDaily, 2.50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pub.Price != 2.50 {
		t.Fatalf("price = %v, want 2.50", pub.Price)
	}

	// Free publications are allowed.
	if _, err := New("Community Bulletin", TypeWeekly, 0); err != nil {
		t.Fatalf("zero price should be accepted: %v", err)
	}
}

func TestNewPublicationRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		pubName string
		pubType Type
		price   float64
		want    error
	}{
		{"short name", "X", TypeDaily, 2.50, apperr.ErrConstraint},
		{"bad type", "The Morning Herald", Type("fortnightly"), 2.50, apperr.ErrValidation},
		{"negative price", "The Morning Herald", TypeDaily, -1, apperr.ErrConstraint},
		{"price over cap", "The Morning Herald", TypeDaily, 1000.01, apperr.ErrConstraint},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.pubName, tc.pubType, tc.price)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
