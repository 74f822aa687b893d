package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/requestdata"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := newTestDB(t)
	log := testLogger()
	return NewAuthService(db, log, repos.NewUserRepo(db, log), repos.NewUserTokenRepo(db, log))
}

func TestAuthService_RegisterIssuesResolvableToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, RegisterInput{Nome: "Ana", Email: "ANA@Example.com", Senha: "segredo"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("email not lowercased: %q", user.Email)
	}
	if user.Senha == "segredo" {
		t.Fatalf("password stored in clear")
	}

	resolved, err := svc.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("token resolved to wrong user")
	}
}

func TestAuthService_RegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, RegisterInput{Nome: "Ana", Email: "ana@example.com", Senha: "x"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(ctx, RegisterInput{Nome: "Outra", Email: "ana@example.com", Senha: "y"})
	if apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthService_LoginChecksPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, RegisterInput{Nome: "Ana", Email: "ana@example.com", Senha: "segredo"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "ana@example.com", "errada"); apierr.Status(err) != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "ninguem@example.com", "x"); apierr.Status(err) != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %v", err)
	}

	user, token, err := svc.Login(ctx, "ana@example.com", "segredo")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user == nil {
		t.Fatalf("login returned empty session")
	}
}

func TestAuthService_LogoutInvalidatesToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, RegisterInput{Nome: "Ana", Email: "ana@example.com", Senha: "segredo"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	authed := requestdata.WithRequestData(ctx, &requestdata.RequestData{TokenString: token, UserID: user.ID})
	if err := svc.Logout(authed); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.ResolveToken(ctx, token); apierr.Status(err) != http.StatusUnauthorized {
		t.Fatalf("token survived logout: %v", err)
	}
}
