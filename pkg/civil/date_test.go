package civil

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != 2024 || d.Month != time.March || d.Day != 15 {
		t.Errorf("unexpected date: %+v", d)
	}
	if _, err := Parse("15/03/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		When *Date `json:"when"`
	}
	if err := json.Unmarshal([]byte(`{"when":"2023-12-01"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.When == nil || payload.When.String() != "2023-12-01" {
		t.Fatalf("expected 2023-12-01, got %v", payload.When)
	}

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"when":"2023-12-01"}` {
		t.Errorf("unexpected json: %s", b)
	}

	payload.When = nil
	if err := json.Unmarshal([]byte(`{"when":null}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.When != nil {
		t.Error("expected null to leave pointer nil")
	}
}

func TestDate_Scan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2022-01-02" {
		t.Errorf("expected 2022-01-02, got %s", d)
	}
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestDate_Before(t *testing.T) {
	a := MustParse("2024-01-01")
	b := MustParse("2024-06-01")
	if !a.Before(b) || b.Before(a) {
		t.Error("unexpected ordering")
	}
}

func TestDate_EmptyStringRejected(t *testing.T) {
	var payload struct {
		When *Date `json:"when"`
	}
	err := json.Unmarshal([]byte(`{"when":""}`), &payload)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}

	var plain struct {
		When Date `json:"when"`
	}
	if err := json.Unmarshal([]byte(`{"when":""}`), &plain); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for value field, got %v", err)
	}
}

func TestDate_ZeroRoundTrip(t *testing.T) {
	var payload struct {
		When Date `json:"when"`
	}
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"when":null}` {
		t.Fatalf("unexpected json: %s", b)
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		t.Fatalf("zero date did not round-trip: %v", err)
	}
	if !payload.When.IsZero() {
		t.Errorf("expected zero date, got %v", payload.When)
	}
	if v, _ := payload.When.Value(); v != nil {
		t.Errorf("expected NULL value for zero date, got %v", v)
	}
}
