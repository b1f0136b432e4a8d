package claim

import (
	"context"
	"reflect"
	"testing"

	"github.com/patinaomi/sprint-3-devops/internal/domain/consultation"
	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/pkg/civil"
)

func setup(t *testing.T) (*Service, consultation.Repository, string) {
	t.Helper()
	consultations := consultation.NewMemoryRepo()
	cons := &consultation.Consultation{
		ClientID: "c1", ClinicID: "k1", DentistID: "d1",
		ServiceType: "Extração", Date: civil.MustParse("2025-03-01"),
	}
	if err := consultations.Create(context.Background(), cons); err != nil {
		t.Fatalf("seed consultation: %v", err)
	}
	return NewService(NewMemoryRepo(), consultations), consultations, cons.ID
}

func TestService_CreateRequiresConsultation(t *testing.T) {
	svc, _, _ := setup(t)
	_, err := svc.Create(context.Background(), &Request{ConsultationID: "missing", Name: "Quebra de prótese"})
	nf, ok := err.(*apperr.NotFoundError)
	if !ok || nf.Kind != "consultation" || nf.ID != "missing" {
		t.Fatalf("expected consultation not found, got %v", err)
	}
	if list, _ := svc.List(context.Background()); len(list) != 0 {
		t.Errorf("expected nothing stored, got %d", len(list))
	}
}

func TestService_EmptyPatchKeepsEntity(t *testing.T) {
	ctx := context.Background()
	svc, _, consID := setup(t)
	amount := 90.0
	opened := civil.MustParse("2025-03-02")
	c, err := svc.Create(ctx, &Request{ConsultationID: consID, Name: "Fratura", Status: "A", Amount: &amount, OpenedDate: &opened})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Patch(ctx, c.ID, &Patch{})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("empty patch changed entity: %+v vs %+v", got, c)
	}
}

func TestService_CreatePatchStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, consID := setup(t)

	amount := 320.0
	opened := civil.MustParse("2025-03-02")
	c, err := svc.Create(ctx, &Request{
		ConsultationID: consID,
		Name:           "Quebra de prótese",
		Status:         "A",
		Amount:         &amount,
		OpenedDate:     &opened,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status, desc := "R", "Reembolsado"
	resolved := civil.MustParse("2025-03-20")
	got, err := svc.Patch(ctx, c.ID, &Patch{Status: &status, StatusDescription: &desc, ResolvedDate: &resolved})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if got.Status != "R" || got.StatusDescription != "Reembolsado" || got.ResolvedDate.String() != "2025-03-20" {
		t.Errorf("unexpected patched %+v", got)
	}
	if got.Amount == nil || *got.Amount != 320 || got.OpenedDate.String() != "2025-03-02" || got.ConsultationID != consID {
		t.Errorf("unpatched fields changed: %+v", got)
	}
}

func TestService_UpdateMissingClaim(t *testing.T) {
	svc, _, consID := setup(t)
	_, err := svc.Update(context.Background(), "nope", &Request{ConsultationID: consID, Name: "x"})
	nf, ok := err.(*apperr.NotFoundError)
	if !ok || nf.Kind != "claim" {
		t.Fatalf("expected claim not found, got %v", err)
	}
}

func TestService_UpdateAfterConsultationDeleted(t *testing.T) {
	ctx := context.Background()
	svc, consultations, consID := setup(t)

	c, err := svc.Create(ctx, &Request{ConsultationID: consID, Name: "Fratura"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := consultations.Delete(ctx, consID); err != nil {
		t.Fatalf("delete consultation: %v", err)
	}

	if _, err := svc.Update(ctx, c.ID, &Request{ConsultationID: consID, Name: "Fratura 2"}); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	stored, _ := svc.Get(ctx, c.ID)
	if stored.Name != "Fratura" {
		t.Errorf("stored record changed: %+v", stored)
	}

	name := "Fratura dentária"
	patched, err := svc.Patch(ctx, c.ID, &Patch{Name: &name})
	if err != nil {
		t.Fatalf("patch with dangling consultation: %v", err)
	}
	if patched.Name != name {
		t.Errorf("name = %q", patched.Name)
	}
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _, consID := setup(t)
	c, _ := svc.Create(ctx, &Request{ConsultationID: consID, Name: "x"})

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, c.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := svc.Get(ctx, c.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
