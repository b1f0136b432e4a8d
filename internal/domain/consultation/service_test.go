package consultation

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/patinaomi/sprint-3-devops/internal/domain/client"
	"github.com/patinaomi/sprint-3-devops/internal/domain/clinic"
	"github.com/patinaomi/sprint-3-devops/internal/domain/dentist"
	"github.com/patinaomi/sprint-3-devops/internal/domain/specialty"
	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/pkg/civil"
)

type fixture struct {
	svc       *Service
	clients   *client.Service
	clientID  string
	clinicID  string
	dentistID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	clients, clinics, dentists := client.NewMemoryRepo(), clinic.NewMemoryRepo(), dentist.NewMemoryRepo()
	specialties := specialty.NewMemoryRepo()

	f := &fixture{
		svc:     NewService(NewMemoryRepo(), Refs{Clients: clients, Clinics: clinics, Dentists: dentists}),
		clients: client.NewService(clients, nil, zerolog.Nop()),
	}

	cl, err := f.clients.Create(ctx, &client.Request{Name: "Ana", Phone: "11988887777", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	ci, err := clinic.NewService(clinics).Create(ctx, &clinic.Request{Name: "Sorriso", Address: "Rua A"})
	if err != nil {
		t.Fatalf("create clinic: %v", err)
	}
	sp, err := specialty.NewService(specialties).Create(ctx, &specialty.Request{Name: "Endodontia"})
	if err != nil {
		t.Fatalf("create specialty: %v", err)
	}
	rating := 5.0
	de, err := dentist.NewService(dentists, clinics, specialties).Create(ctx, &dentist.Request{
		Name: "Carlos", Surname: "Lima", Phone: "1190000", ClinicID: ci.ID, SpecialtyID: sp.ID, Rating: &rating,
	})
	if err != nil {
		t.Fatalf("create dentist: %v", err)
	}
	f.clientID, f.clinicID, f.dentistID = cl.ID, ci.ID, de.ID
	return f
}

func (f *fixture) request() *Request {
	d := civil.MustParse("2025-01-15")
	return &Request{
		ClientID:    f.clientID,
		ClinicID:    f.clinicID,
		DentistID:   f.dentistID,
		ServiceType: "Limpeza",
		Date:        &d,
		Status:      "A",
	}
}

func notFoundKind(t *testing.T, err error) string {
	t.Helper()
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	return nf.Kind
}

func TestService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, err := f.svc.Create(ctx, f.request())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := f.svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ServiceType != "Limpeza" || got.Date.String() != "2025-01-15" || got.DentistID != f.dentistID {
		t.Errorf("unexpected consultation %+v", got)
	}
	if got.Cost != nil || got.ReturnDate != nil {
		t.Errorf("expected unset optional fields, got %+v", got)
	}
}

func TestService_CreateWithDeletedClient(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if err := f.clients.Delete(ctx, f.clientID); err != nil {
		t.Fatalf("delete client: %v", err)
	}
	_, err := f.svc.Create(ctx, f.request())
	if kind := notFoundKind(t, err); kind != "client" {
		t.Errorf("kind = %q, want client", kind)
	}
	list, _ := f.svc.List(ctx)
	if len(list) != 0 {
		t.Errorf("expected nothing stored, got %d", len(list))
	}
}

func TestService_CreateReferenceOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := f.request()
	req.ClinicID = "nope"
	req.DentistID = "nope"
	if kind := notFoundKind(t, func() error { _, err := f.svc.Create(ctx, req); return err }()); kind != "clinic" {
		t.Errorf("kind = %q, want clinic", kind)
	}

	req = f.request()
	req.DentistID = "nope"
	if kind := notFoundKind(t, func() error { _, err := f.svc.Create(ctx, req); return err }()); kind != "dentist" {
		t.Errorf("kind = %q, want dentist", kind)
	}
}

func TestService_PatchClinicalFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, _ := f.svc.Create(ctx, f.request())
	cost := 150.0
	ret := civil.MustParse("2025-02-10")
	notes := "dor leve"
	patched, err := f.svc.Patch(ctx, c.ID, &Patch{Cost: &cost, ReturnDate: &ret, Notes: &notes})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.Cost == nil || *patched.Cost != 150 || patched.ReturnDate.String() != "2025-02-10" {
		t.Errorf("unexpected patched %+v", patched)
	}
	if patched.ServiceType != "Limpeza" || patched.ClientID != f.clientID || patched.Status != "A" {
		t.Errorf("unpatched fields changed: %+v", patched)
	}
}

func TestService_PatchKeepsDanglingReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, _ := f.svc.Create(ctx, f.request())
	if err := f.clients.Delete(ctx, f.clientID); err != nil {
		t.Fatalf("delete client: %v", err)
	}
	status := "C"
	patched, err := f.svc.Patch(ctx, c.ID, &Patch{Status: &status})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.ClientID != f.clientID || patched.Status != "C" {
		t.Errorf("unexpected patched %+v", patched)
	}
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.svc.Update(ctx, "missing", f.request()); notFoundKind(t, err) != "consultation" {
		t.Errorf("expected consultation not found, got %v", err)
	}

	c, _ := f.svc.Create(ctx, f.request())
	req := f.request()
	req.ServiceType = "Canal"
	updated, err := f.svc.Update(ctx, c.ID, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != c.ID || updated.ServiceType != "Canal" {
		t.Errorf("unexpected updated %+v", updated)
	}

	if err := f.svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.svc.Delete(ctx, c.ID); notFoundKind(t, err) != "consultation" {
		t.Errorf("expected consultation not found on second delete")
	}
}

func TestService_EmptyPatchKeepsEntity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := f.request()
	cost, ret := 150.0, civil.MustParse("2025-02-15")
	req.Cost, req.ReturnDate = &cost, &ret
	created, err := f.svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := f.svc.Patch(ctx, created.ID, &Patch{})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Errorf("empty patch changed entity: %+v vs %+v", got, created)
	}
}
