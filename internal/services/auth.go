package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/requestdata"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

type RegisterInput struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// AuthService issues and resolves opaque bearer tokens. A token is a random
// value persisted in the token table; resolving it is a plain lookup.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*types.User, string, error)
	Login(ctx context.Context, email, senha string) (*types.User, string, error)
	Logout(ctx context.Context) error
	ResolveToken(ctx context.Context, value string) (*types.User, error)
}

type authService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  repos.UserRepo
	tokenRepo repos.UserTokenRepo
}

func NewAuthService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, tokenRepo repos.UserTokenRepo) AuthService {
	serviceLog := baseLog.With("service", "AuthService")
	return &authService{
		db:        db,
		log:       serviceLog,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

func (as *authService) Register(ctx context.Context, in RegisterInput) (*types.User, string, error) {
	nome := strings.TrimSpace(in.Nome)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if nome == "" || email == "" || in.Senha == "" {
		return nil, "", apierr.Validation("Campos nome, email e senha são obrigatórios")
	}

	existing, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		as.log.Error("Register email lookup failed", "error", err)
		return nil, "", apierr.Internal("Erro ao criar usuário")
	}
	if len(existing) > 0 {
		return nil, "", apierr.Validation("Email já cadastrado")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		as.log.Error("Register password hash failed", "error", err)
		return nil, "", apierr.Internal("Erro ao criar usuário")
	}

	user := &types.User{
		ID:    uuid.New(),
		Nome:  nome,
		Email: email,
		Senha: string(hashed),
	}
	tokenValue := uuid.NewString()

	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			return err
		}
		token := &types.UserToken{
			ID:     uuid.New(),
			UserID: user.ID,
			Valor:  tokenValue,
		}
		_, err := as.tokenRepo.Create(ctx, tx, []*types.UserToken{token})
		return err
	}); err != nil {
		as.log.Error("Register failed", "error", err, "email", email)
		return nil, "", apierr.Internal("Erro ao criar usuário")
	}

	return user, tokenValue, nil
}

func (as *authService) Login(ctx context.Context, email, senha string) (*types.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || senha == "" {
		return nil, "", apierr.Validation("Campos email e senha são obrigatórios")
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		as.log.Error("Login email lookup failed", "error", err)
		return nil, "", apierr.Internal("Erro ao autenticar")
	}
	if len(users) == 0 {
		return nil, "", apierr.Unauthorized("Email ou senha inválidos")
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)); err != nil {
		return nil, "", apierr.Unauthorized("Email ou senha inválidos")
	}

	token := &types.UserToken{
		ID:     uuid.New(),
		UserID: user.ID,
		Valor:  uuid.NewString(),
	}
	if _, err := as.tokenRepo.Create(ctx, nil, []*types.UserToken{token}); err != nil {
		as.log.Error("Login token create failed", "error", err, "user_id", user.ID)
		return nil, "", apierr.Internal("Erro ao autenticar")
	}

	return user, token.Valor, nil
}

func (as *authService) Logout(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return apierr.Unauthorized("Não autenticado")
	}

	if err := as.tokenRepo.DeleteByValues(ctx, nil, []string{rd.TokenString}); err != nil {
		as.log.Error("Logout failed", "error", err)
		return apierr.Internal("Erro ao encerrar sessão")
	}

	return nil
}

func (as *authService) ResolveToken(ctx context.Context, value string) (*types.User, error) {
	if value == "" {
		return nil, apierr.Unauthorized("Token não fornecido")
	}

	tokens, err := as.tokenRepo.GetByValues(ctx, nil, []string{value})
	if err != nil {
		as.log.Error("Token lookup failed", "error", err)
		return nil, apierr.Internal("Erro ao validar token")
	}
	if len(tokens) == 0 {
		return nil, apierr.Unauthorized("Token inválido")
	}

	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{tokens[0].UserID})
	if err != nil {
		as.log.Error("Token user lookup failed", "error", err)
		return nil, apierr.Internal("Erro ao validar token")
	}
	if len(users) == 0 {
		return nil, apierr.Unauthorized("Token inválido")
	}

	return users[0], nil
}
