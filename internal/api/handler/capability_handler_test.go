package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/admin-users/internal/core/domain"
)

type stubChecker struct {
	err error
}

func (s stubChecker) RequireAdmin(_ *http.Request) (*domain.Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Credential{Subject: "root", Role: domain.RoleAdmin}, nil
}

func TestCapabilityHandler_Get(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantAdmin  bool
		wantReason string
	}{
		{"admin", nil, true, ""},
		{"no session", domain.ErrUnauthenticated, false, "unauthenticated"},
		{"insufficient role", domain.ErrForbidden, false, "forbidden"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/v1/admin/capabilities", nil), rec)

			if err := NewCapabilityHandler(stubChecker{err: tc.err}).Get(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var resp capabilitiesResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Admin != tc.wantAdmin || resp.Reason != tc.wantReason {
				t.Fatalf("unexpected response: %+v", resp)
			}
		})
	}
}

func TestCapabilityHandler_UnexpectedError(t *testing.T) {
	boom := errors.New("boom")
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/v1/admin/capabilities", nil), httptest.NewRecorder())

	if err := NewCapabilityHandler(stubChecker{err: boom}).Get(c); !errors.Is(err, boom) {
		t.Fatalf("expected error to propagate, got %v", err)
	}
}
