package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"gorm.io/datatypes"
)

func TestSnapshotRoundtrip(t *testing.T) {
	order := orderdomain.Order{
		OrderID:      101,
		CustomerID:   7,
		AreaID:       1,
		NewspaperID:  3,
		DeliveryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:       orderdomain.StatusPending,
	}

	snapshot := SnapshotOf(order)
	if snapshot.DeliveryDate != "2024-06-01" {
		t.Fatalf("delivery date = %q, want 2024-06-01", snapshot.DeliveryDate)
	}

	encoded, err := EncodeSnapshots([]OrderSnapshot{snapshot})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeSnapshots(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != snapshot {
		t.Fatalf("roundtrip mismatch: %+v", decoded)
	}
}

func TestDecodeSnapshotsCorruptBlob(t *testing.T) {
	_, err := DecodeSnapshots(datatypes.JSON([]byte(`[{"order_id": 101`)))
	if !errors.Is(err, apperr.ErrDataCorruption) {
		t.Fatalf("got %v, want data corruption", err)
	}
}

func TestDecodeSnapshotsNonListBlob(t *testing.T) {
	// Valid JSON that is not a list is malformed input, not corruption.
	for _, blob := range []string{`{"not": "a list"}`, `"orders"`, `42`} {
		_, err := DecodeSnapshots(datatypes.JSON([]byte(blob)))
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("blob %s: got %v, want validation error", blob, err)
		}
		if errors.Is(err, apperr.ErrDataCorruption) {
			t.Fatalf("blob %s: must not be classified as corruption", blob)
		}
	}
}

func TestDecodeSnapshotsEmptyColumn(t *testing.T) {
	_, err := DecodeSnapshots(nil)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}

	_, err = DecodeSnapshots(datatypes.JSON([]byte(`[]`)))
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestNewDocket(t *testing.T) {
	docket, err := New(1, "  Pat Doyle ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docket.DeliveryPerson != "Pat Doyle" {
		t.Fatalf("delivery person = %q", docket.DeliveryPerson)
	}

	if _, err := New(0, "Pat Doyle"); !errors.Is(err, apperr.ErrConstraint) {
		t.Fatalf("zero area: got %v", err)
	}
	if _, err := New(1, "   "); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("blank person: got %v", err)
	}
}
