package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"insureAdvisor/pkg/utils"

	"github.com/labstack/echo/v4"
)

func postToken(handler *AuthHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := handler.Token(e.NewContext(req, rec)); err != nil {
		panic(err)
	}
	return rec
}

func TestTokenExchange(t *testing.T) {
	utils.InitJWT("test-secret")
	hash, err := utils.HashAPIKey("valid-key")
	if err != nil {
		t.Fatalf("HashAPIKey returned error: %v", err)
	}
	handler := NewAuthHandler(hash)

	rec := postToken(handler, `{"api_key": "valid-key"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "token") {
		t.Errorf("body missing token: %s", rec.Body.String())
	}

	rec = postToken(handler, `{"api_key": "wrong-key"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	rec = postToken(handler, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
