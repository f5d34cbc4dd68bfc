package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sport-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(store *memStore) *fiber.App {
	userRepo := &fakeUserRepo{s: store}
	orgRepo := &fakeOrgRepo{s: store}
	attRepo := &fakeAttendanceRepo{s: store}

	userUC := usecase.NewUserUsecase(userRepo)
	userHdl := NewUserHandler(userUC, userRepo)
	orgHdl := NewOrganizationHandler(orgRepo, userRepo)
	attHdl := NewAttendanceHandler(attRepo, orgRepo, userRepo)

	app := fiber.New()

	users := app.Group("/api/users")
	users.Post("/register", userHdl.Register)
	users.Post("/login", userHdl.Login)
	users.Get("/", userHdl.GetUsers)
	users.Get("/:id", userHdl.GetUser)
	users.Put("/:id", userHdl.UpdateUser)
	users.Delete("/:id", userHdl.DeleteUser)

	orgs := app.Group("/api/organizations")
	orgs.Post("/", orgHdl.CreateOrganization)
	orgs.Get("/", orgHdl.GetOrganizations)
	orgs.Get("/:id", orgHdl.GetOrganization)
	orgs.Put("/:id", orgHdl.UpdateOrganization)
	orgs.Delete("/:id", orgHdl.DeleteOrganization)
	orgs.Get("/:id/members", orgHdl.GetOrgMembers)
	app.Post("/api/join-organization", orgHdl.JoinOrganization)

	sessions := app.Group("/api/attendance-sessions")
	sessions.Post("/", attHdl.CreateSession)
	sessions.Get("/:id", attHdl.GetSession)
	sessions.Put("/:id/close", attHdl.CloseSession)
	sessions.Get("/:id/records", attHdl.GetSessionRecords)
	app.Post("/api/attendance-records", attHdl.RecordAttendance)
	app.Get("/api/organizations/:id/attendance-sessions", attHdl.GetOrgSessions)
	app.Get("/api/organizations/:id/attendance-records", attHdl.GetOrgRecords)

	return app
}

type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var parsed apiResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			t.Fatalf("unmarshal response %q: %v", raw, err)
		}
	}
	return resp.StatusCode, parsed
}

func registerUser(t *testing.T, app *fiber.App, name, email string) uint {
	t.Helper()

	code, resp := doRequest(t, app, http.MethodPost, "/api/users/register",
		`{"name":"`+name+`","email":"`+email+`","password":"rahasia123"}`)
	if code != http.StatusCreated {
		t.Fatalf("register %s: status %d, message %q", email, code, resp.Message)
	}

	var user struct {
		ID uint `json:"ID"`
	}
	if err := json.Unmarshal(resp.Data, &user); err != nil {
		t.Fatalf("unmarshal user: %v", err)
	}
	return user.ID
}
