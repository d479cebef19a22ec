package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/matejg/invtrack/internal/db"
	"github.com/matejg/invtrack/internal/model"
	"github.com/matejg/invtrack/internal/store"
)

const testJWTSecret = "test-secret"

func setupTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	database := db.NewTestDB(t)
	router := NewRouter(database, testJWTSecret)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	// Create a user.
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.DefaultCost)
	store.CreateUser(ctx, database, "alice", string(hash))

	// Get token.
	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "password1"})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	var loginResp map[string]string
	json.NewDecoder(resp.Body).Decode(&loginResp)
	token := loginResp["token"]
	if token == "" {
		t.Fatal("empty token from login")
	}

	return server, token
}

func authRequest(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func TestRegisterConflict(t *testing.T) {
	server, _ := setupTestServer(t)

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "password2"})
	resp, err := http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate username, got %d", resp.StatusCode)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	server, _ := setupTestServer(t)

	// Wrong password and unknown username must be indistinguishable.
	for _, creds := range []map[string]string{
		{"username": "alice", "password": "wrong-password"},
		{"username": "nobody", "password": "password1"},
	} {
		body, _ := json.Marshal(creds)
		resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("login request: %v", err)
		}

		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401 for %v, got %d", creds, resp.StatusCode)
		}
		if errResp["error"] != "invalid credentials" {
			t.Errorf("expected uniform error message, got %q", errResp["error"])
		}
	}
}

func TestUnauthenticatedRequest(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/items")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestItemLifecycle(t *testing.T) {
	server, token := setupTestServer(t)

	// Create.
	resp := authRequest(t, "POST", server.URL+"/api/items", token, map[string]string{
		"name": "Drill", "serial": "SN123", "location": "Shelf-A",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var item model.Item
	json.NewDecoder(resp.Body).Decode(&item)
	resp.Body.Close()

	if item.Status != model.ItemStatusIn {
		t.Errorf("expected new item status IN, got %q", item.Status)
	}
	if item.Code == "" {
		t.Fatal("expected generated item code")
	}

	// Fetch by code.
	resp = authRequest(t, "GET", server.URL+"/api/items/"+item.Code, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var fetched model.Item
	json.NewDecoder(resp.Body).Decode(&fetched)
	resp.Body.Close()
	if fetched.Name != "Drill" || fetched.Serial != "SN123" || fetched.Location != "Shelf-A" {
		t.Errorf("unexpected item fields: %+v", fetched)
	}

	// Mark outgoing.
	resp = authRequest(t, "POST", fmt.Sprintf("%s/api/items/%d/outgoing", server.URL, item.ID), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var updated model.Item
	json.NewDecoder(resp.Body).Decode(&updated)
	resp.Body.Close()
	if updated.Status != model.ItemStatusOut {
		t.Errorf("expected status OUT, got %q", updated.Status)
	}

	// OUT-filtered list contains it, IN-filtered does not.
	resp = authRequest(t, "GET", server.URL+"/api/items?status=OUT&search=drill", token, nil)
	var outItems []model.Item
	json.NewDecoder(resp.Body).Decode(&outItems)
	resp.Body.Close()
	if len(outItems) != 1 {
		t.Errorf("expected item in OUT-filtered list, got %d items", len(outItems))
	}

	resp = authRequest(t, "GET", server.URL+"/api/items?status=IN", token, nil)
	var inItems []model.Item
	json.NewDecoder(resp.Body).Decode(&inItems)
	resp.Body.Close()
	if len(inItems) != 0 {
		t.Errorf("expected empty IN-filtered list, got %d items", len(inItems))
	}
}

func TestMarkOutgoingNotFound(t *testing.T) {
	server, token := setupTestServer(t)

	resp := authRequest(t, "POST", server.URL+"/api/items/9999/outgoing", token, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", resp.StatusCode)
	}
}

func TestItemLabel(t *testing.T) {
	server, token := setupTestServer(t)

	resp := authRequest(t, "POST", server.URL+"/api/items", token, map[string]string{
		"name": "Drill", "serial": "SN123", "location": "Shelf-A",
	})
	var item model.Item
	json.NewDecoder(resp.Body).Decode(&item)
	resp.Body.Close()

	resp = authRequest(t, "GET", server.URL+"/api/items/"+item.Code+"/label", token, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %q", ct)
	}
}

func TestReservationLifecycle(t *testing.T) {
	server, token := setupTestServer(t)

	resp := authRequest(t, "POST", server.URL+"/api/reservations", token, map[string]string{
		"property_code": "PC-001", "location": "Warehouse 2", "reason": "Project Alpha",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var reservation model.Reservation
	json.NewDecoder(resp.Body).Decode(&reservation)
	resp.Body.Close()

	if reservation.Status != model.ReservationStatusReserved {
		t.Errorf("expected status RESERVED, got %q", reservation.Status)
	}

	resp = authRequest(t, "POST", fmt.Sprintf("%s/api/reservations/%d/issue", server.URL, reservation.ID), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var issued model.Reservation
	json.NewDecoder(resp.Body).Decode(&issued)
	resp.Body.Close()

	if issued.Status != model.ReservationStatusIssued {
		t.Errorf("expected status ISSUED, got %q", issued.Status)
	}
	if issued.IssuedAt == nil {
		t.Error("expected issued_at to be set")
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	server, token := setupTestServer(t)

	resp := authRequest(t, "POST", server.URL+"/api/auth/logout", token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout failed: %d", resp.StatusCode)
	}

	// The revoked token must no longer authenticate.
	resp = authRequest(t, "GET", server.URL+"/api/items", token, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", resp.StatusCode)
	}
}
