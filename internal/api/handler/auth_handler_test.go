package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

type stubAuthService struct {
	user  *domain.User
	token string
	err   error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) Me(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubAuthService) UpdateDetails(ctx context.Context, userID primitive.ObjectID, in ports.UpdateDetailsInput) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func newAuthContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_ReturnsTokenEnvelope(t *testing.T) {
	svc := &stubAuthService{
		user:  &domain.User{ID: primitive.NewObjectID(), Role: domain.RoleUser},
		token: "signed-token",
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Jane","email":"jane@example.com","password":"password123"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != true {
		t.Errorf("success: got %v", body["success"])
	}
	if body["token"] != "signed-token" {
		t.Errorf("token: got %v", body["token"])
	}
}

func TestRegister_ValidationFailureListsFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"","email":"not-an-email","password":"123"}`)

	err := h.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}

	fields := map[string]bool{}
	for _, fe := range ve.Fields {
		fields[fe.Field] = true
	}
	for _, want := range []string{"name", "email", "password"} {
		if !fields[want] {
			t.Errorf("missing field error for %q in %v", want, ve.Fields)
		}
	}
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Eve","email":"eve@example.com","password":"password123","role":"admin"}`)

	err := h.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a ValidationError for role=admin, got %v", err)
	}
}

func TestLogin_ServiceErrorPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidLogin})

	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidLogin) {
		t.Fatalf("expected ErrInvalidLogin to propagate, got %v", err)
	}
}

func TestMe_RequiresAuthClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{user: &domain.User{}})

	c, _ := newAuthContext(t, http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestMe_ReturnsUser(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "Jane", Role: domain.RoleUser}
	h := NewAuthHandler(&stubAuthService{user: user})

	c, rec := newAuthContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set("user_id", user.ID)
	c.Set("role", user.Role)

	if err := h.Me(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rec.Code)
	}

	var body struct {
		Success bool        `json:"success"`
		Data    domain.User `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.Name != "Jane" {
		t.Errorf("data.name: got %q", body.Data.Name)
	}
}
