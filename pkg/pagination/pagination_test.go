package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(query string) Params {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/"+query, nil)
	return FromContext(e.NewContext(req, httptest.NewRecorder()))
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		query string
		want  Params
	}{
		{"", Params{Limit: DefaultLimit}},
		{"?limit=50&offset=10", Params{Limit: 50, Offset: 10}},
		{"?limit=500", Params{Limit: MaxLimit}},
		{"?limit=-1&offset=-3", Params{Limit: DefaultLimit}},
		{"?limit=abc", Params{Limit: DefaultLimit}},
	}
	for _, tt := range tests {
		if got := paramsFor(tt.query); got != tt.want {
			t.Errorf("FromContext(%q) = %+v, want %+v", tt.query, got, tt.want)
		}
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	if got := Page(items, Params{Limit: 2, Offset: 1}); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("unexpected page %v", got)
	}
	if got := Page(items, Params{Limit: 10, Offset: 3}); len(got) != 2 || got[1] != 5 {
		t.Errorf("unexpected tail page %v", got)
	}
	if got := Page(items, Params{Limit: 2, Offset: 9}); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil page, got %#v", got)
	}
}

func TestHasNext(t *testing.T) {
	p := Params{Limit: 2, Offset: 2}
	if !p.HasNext(5) {
		t.Error("expected next page for total 5")
	}
	if p.HasNext(4) {
		t.Error("expected no next page for total 4")
	}
}
