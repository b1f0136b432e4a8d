package clinic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/patinaomi/sprint-3-devops/internal/platform/validate"
)

func newTestHandler() (*Handler, *echo.Echo) {
	e := echo.New()
	e.Validator = validate.New()
	return NewHandler(newTestService()), e
}

func jsonRequest(method, body string) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"nome":"Sorriso","endereco":"Rua A"}`), rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var got Clinic
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.ID == "" || got.Name != "Sorriso" {
		t.Errorf("unexpected body %+v", got)
	}
}

func TestHandler_Create_Invalid(t *testing.T) {
	h, e := newTestHandler()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"endereco":"Rua A"}`), httptest.NewRecorder())

	if code := httpCode(t, h.Create(c)); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestHandler_ListEmpty(t *testing.T) {
	h, e := newTestHandler()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if code := httpCode(t, h.List(c)); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_PatchAndDelete(t *testing.T) {
	h, e := newTestHandler()
	created, _ := h.svc.Create(context.Background(), &Request{Name: "Sorriso", Address: "Rua A"})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPatch, `{"telefone":"1140028922"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	if err := h.Patch(c); err != nil {
		t.Fatalf("patch: %v", err)
	}
	var got Clinic
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Phone != "1140028922" || got.Name != "Sorriso" {
		t.Errorf("unexpected patch result %+v", got)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	if code := httpCode(t, h.Get(c)); code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", code)
	}
}
