package validate

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
)

type sample struct {
	Nome     string  `json:"nome" validate:"required,max=10"`
	Telefone *string `json:"telefone,omitempty" validate:"omitempty,max=15"`
	Status   *string `json:"status,omitempty" validate:"omitempty,len=1"`
}

func TestValidate_RequiredUsesJSONName(t *testing.T) {
	err := New().Validate(&sample{})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "nome" {
		t.Errorf("expected field nome, got %s", ve.Field)
	}
	if ve.Message != "is required" {
		t.Errorf("unexpected message %q", ve.Message)
	}
}

func TestValidate_MaxAndLen(t *testing.T) {
	v := New()
	if err := v.Validate(&sample{Nome: "01234567890"}); err == nil {
		t.Error("expected max violation")
	}
	status := "AB"
	if err := v.Validate(&sample{Nome: "ok", Status: &status}); err == nil {
		t.Error("expected len violation")
	}
	status = "A"
	if err := v.Validate(&sample{Nome: "ok", Status: &status}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_Phone(t *testing.T) {
	type contact struct {
		Telefone string  `json:"telefone" validate:"required,phone"`
		Celular  *string `json:"celular" validate:"omitnil,phone"`
	}
	v := New()
	tests := []struct {
		phone string
		ok    bool
	}{
		{"(11) 98888-7777", true},
		{"+55 11 3333.4444", true},
		{"abc", false},
		{"() -", false},
		{"11 9888x", false},
	}
	for _, tt := range tests {
		err := v.Validate(&contact{Telefone: tt.phone})
		if (err == nil) != tt.ok {
			t.Errorf("phone %q: err = %v, want ok=%v", tt.phone, err, tt.ok)
		}
	}

	empty := ""
	err := v.Validate(&contact{Telefone: "1199", Celular: &empty})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || ve.Field != "celular" {
		t.Errorf("expected celular validation error, got %v", err)
	}
	if err := v.Validate(&contact{Telefone: "1199"}); err != nil {
		t.Errorf("nil optional phone should pass: %v", err)
	}
}

func TestBind_MalformedBody(t *testing.T) {
	e := echo.New()
	e.Validator = New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var s sample
	err := Bind(c, &s)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBind_Valid(t *testing.T) {
	e := echo.New()
	e.Validator = New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Ana","telefone":"11999"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var s sample
	if err := Bind(c, &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Nome != "Ana" || s.Telefone == nil || *s.Telefone != "11999" {
		t.Errorf("unexpected bind result: %+v", s)
	}
}

func TestBind_WithoutRegisteredValidator(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var s sample
	if err := Bind(c, &s); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
