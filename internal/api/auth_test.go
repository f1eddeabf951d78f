package api

import (
	"context"
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	gormModels "digiboard/api/internal/models/gorm"
)

func TestLoginHandler(t *testing.T) {
	h, _, db := setupTestAPI(t)
	router := testRouter(h, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := gormModels.User{Name: "Operator", Email: "ops@digiboard.local", Password: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	rec := doJSON(t, router, http.MethodPost, "/api/login",
		`{"email":"ops@digiboard.local","password":"password123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	if len(token) != 64 {
		t.Errorf("Expected a 64-char token, got %q", token)
	}
	loggedIn := body["user"].(map[string]any)
	if loggedIn["email"] != "ops@digiboard.local" {
		t.Errorf("Unexpected user payload: %v", loggedIn)
	}
	if _, leaked := loggedIn["password"]; leaked {
		t.Error("Password hash must never be serialized")
	}
}

func TestLoginHandlerRejectsBadCredentials(t *testing.T) {
	h, _, db := setupTestAPI(t)
	router := testRouter(h, nil)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	db.Create(&gormModels.User{Name: "Operator", Email: "ops@digiboard.local", Password: string(hash)})

	rec := doJSON(t, router, http.MethodPost, "/api/login",
		`{"email":"ops@digiboard.local","password":"nope"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	if decodeBody(t, rec)["message"] != "Invalid credentials" {
		t.Errorf("Unexpected body: %s", rec.Body.String())
	}
}

func TestLoginHandlerValidation(t *testing.T) {
	h, _, _ := setupTestAPI(t)
	router := testRouter(h, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/login", `{}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}
	errs := decodeBody(t, rec)["errors"].(map[string]any)
	for _, field := range []string{"email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("Expected %s error, got %v", field, errs)
		}
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	h, deps, _ := setupTestAPI(t)
	router := testRouter(h, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/users",
		`{"name":"New Operator","email":"new@digiboard.local","password":"secret-pass"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeBody(t, rec)["data"].(map[string]any)
	if _, leaked := data["password"]; leaked {
		t.Error("Password must never be serialized")
	}

	id := uint(data["id"].(float64))
	stored, err := deps.Repo.Users.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if stored.Password == "secret-pass" {
		t.Error("Password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-pass")); err != nil {
		t.Errorf("Stored hash does not verify: %v", err)
	}

	// Short passwords are rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/users",
		`{"name":"Short","email":"short@digiboard.local","password":"tiny"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for short password, got %d", rec.Code)
	}
}

func TestMeHandler(t *testing.T) {
	h, _, db := setupTestAPI(t)

	user := gormModels.User{Name: "Operator", Email: "ops@digiboard.local", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	rec := doJSON(t, testRouter(h, &user), http.MethodGet, "/api/user", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 as authenticated user, got %d", rec.Code)
	}
	if decodeBody(t, rec)["email"] != "ops@digiboard.local" {
		t.Errorf("Unexpected body: %s", rec.Body.String())
	}

	rec = doJSON(t, testRouter(h, nil), http.MethodGet, "/api/user", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a user, got %d", rec.Code)
	}
}
