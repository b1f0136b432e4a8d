package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/patinaomi/sprint-3-devops/internal/platform/validate"
)

func newTestHandler() (*Handler, *fakeNotifier, *echo.Echo) {
	n := &fakeNotifier{}
	e := echo.New()
	e.Validator = validate.New()
	return NewHandler(NewService(NewMemoryRepo(), n, zerolog.Nop())), n, e
}

func TestHandler_Create(t *testing.T) {
	h, n, e := newTestHandler()

	body := `{"nome":"Ana","telefone":"(11) 98888-7777","email":"ana@example.com","data_nascimento":"1990-05-17"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clientes/criar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var got map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got["telefone"] != "11988887777" || got["data_nascimento"] != "1990-05-17" {
		t.Errorf("unexpected body %v", got)
	}
	if len(n.sent) != 1 {
		t.Errorf("expected welcome email, got %d", len(n.sent))
	}
}

func TestHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"telefone":"1199","email":"ana@example.com"}`},
		{"bad email", `{"nome":"Ana","telefone":"1199","email":"nope"}`},
		{"name too long", `{"nome":"` + strings.Repeat("a", 101) + `","telefone":"1199","email":"ana@example.com"}`},
		{"bad date", `{"nome":"Ana","telefone":"1199","email":"ana@example.com","data_nascimento":"17/05/1990"}`},
		{"empty date", `{"nome":"Ana","telefone":"1199","email":"ana@example.com","data_nascimento":""}`},
		{"phone without digits", `{"nome":"Ana","telefone":"abc","email":"ana@example.com"}`},
		{"phone with letters", `{"nome":"Ana","telefone":"11 9888x","email":"ana@example.com"}`},
		{"malformed", `{"nome":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, n, e := newTestHandler()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			err := h.Create(e.NewContext(req, httptest.NewRecorder()))
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
			if len(n.sent) != 0 {
				t.Error("no email should be sent for a rejected request")
			}
		})
	}
}

func TestHandler_ListEmpty(t *testing.T) {
	h, _, e := newTestHandler()
	err := h.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound || he.Message != "Nenhum cliente encontrado." {
		t.Fatalf("expected 404 with message, got %v", err)
	}
}

func TestHandler_PatchRejectsPhoneWithoutDigits(t *testing.T) {
	h, _, e := newTestHandler()
	created, err := h.svc.Create(context.Background(), &Request{Name: "Ana", Phone: "11988887777", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, body := range []string{`{"telefone":"abc"}`, `{"telefone":""}`} {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(created.ID)
		err := h.Patch(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", body, err)
		}
	}

	got, _ := h.svc.Get(context.Background(), created.ID)
	if got.Phone != "11988887777" {
		t.Errorf("phone changed to %q", got.Phone)
	}
}
