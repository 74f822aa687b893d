package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

type UpdateProfileInput struct {
	Nome          *string `json:"nome"`
	Faixa         *string `json:"faixa"`
	Academia      *string `json:"academia"`
	Cidade        *string `json:"cidade"`
	Estado        *string `json:"estado"`
	Pais          *string `json:"pais"`
	Bio           *string `json:"bio"`
	Instagram     *string `json:"instagram"`
	PerfilPublico *bool   `json:"perfilPublico"`
}

// ProfileDTO is the user read model with the avatar expanded to a URL.
type ProfileDTO struct {
	*types.User
	ImagemURL string `json:"imagemUrl"`
}

type UserService interface {
	GetMe(ctx context.Context) (*ProfileDTO, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*ProfileDTO, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	media    MediaLinker
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, media MediaLinker, userRepo repos.UserRepo) UserService {
	serviceLog := baseLog.With("service", "UserService")
	return &userService{
		db:       db,
		log:      serviceLog,
		media:    media,
		userRepo: userRepo,
	}
}

func (us *userService) GetMe(ctx context.Context) (*ProfileDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return us.load(ctx, userID)
}

func (us *userService) load(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		us.log.Error("Load user failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao carregar perfil")
	}
	if len(users) == 0 {
		return nil, apierr.NotFound("Usuário não encontrado")
	}

	user := users[0]
	return &ProfileDTO{User: user, ImagemURL: us.media.AvatarURL(user.Imagem)}, nil
}

func (us *userService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*ProfileDTO, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Nome != nil {
		fields["nome"] = *in.Nome
	}
	if in.Faixa != nil {
		fields["faixa"] = *in.Faixa
	}
	if in.Academia != nil {
		fields["academia"] = *in.Academia
	}
	if in.Cidade != nil {
		fields["cidade"] = *in.Cidade
	}
	if in.Estado != nil {
		fields["estado"] = *in.Estado
	}
	if in.Pais != nil {
		fields["pais"] = *in.Pais
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Instagram != nil {
		fields["instagram"] = *in.Instagram
	}
	if in.PerfilPublico != nil {
		fields["perfil_publico"] = *in.PerfilPublico
	}

	if err := us.userRepo.UpdateFields(ctx, nil, userID, fields); err != nil {
		us.log.Error("Update profile failed", "error", err, "user_id", userID)
		return nil, apierr.Internal("Erro ao atualizar perfil")
	}

	return us.load(ctx, userID)
}
