package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/nyangbti/catquiz/internal/catalog"
)

func adminTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing test password: %v", err)
	}
	return testRouter(t, string(hash)), "letmein"
}

func loginAdmin(t *testing.T, r http.Handler, password string) *http.Cookie {
	t.Helper()

	body, _ := json.Marshal(AdminLoginRequest{Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("login: no session cookie set")
	return nil
}

func TestAdminLoginWrongPassword(t *testing.T) {
	r, _ := adminTestRouter(t)

	body, _ := json.Marshal(AdminLoginRequest{Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAdminLoginMissingPassword(t *testing.T) {
	r, _ := adminTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAdminStatsRequiresSession(t *testing.T) {
	r, _ := adminTestRouter(t)

	// No cookie.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no cookie: expected 401, got %d", w.Code)
	}

	// Unknown session.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: adminCookieName, Value: "bogus"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad session: expected 401, got %d", w.Code)
	}
}

func TestAdminLoginAndStats(t *testing.T) {
	r, password := adminTestRouter(t)
	cookie := loginAdmin(t, r, password)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AdminStatsResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Breeds != len(catalog.Breeds()) {
		t.Errorf("breeds = %d, want %d", resp.Breeds, len(catalog.Breeds()))
	}
	if resp.Questions != len(catalog.Questions()) {
		t.Errorf("questions = %d, want %d", resp.Questions, len(catalog.Questions()))
	}
	if resp.Profiles != 0 || resp.Shares != 0 {
		t.Errorf("fresh service counted profiles=%d shares=%d", resp.Profiles, resp.Shares)
	}
}

func TestAdminDisabledWithoutHash(t *testing.T) {
	r := testRouter(t, "")

	body, _ := json.Marshal(AdminLoginRequest{Password: "letmein"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code == http.StatusOK {
		t.Error("admin login succeeded with no configured password hash")
	}
}
