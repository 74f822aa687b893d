package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "bjjtrainer", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.GamePlan{},
		&types.GamePlanNode{},
		&types.TrainingSession{},
		&types.TrainingImage{},
		&types.Competition{},
		&types.CompetitionImage{},
		&types.Technique{},
		&types.Position{},
		&types.Note{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		name string
		stmt string
	}{
		{
			name: "fk_token_user_id",
			stmt: `ALTER TABLE "token"
				ADD CONSTRAINT "fk_token_user_id"
				FOREIGN KEY ("user_id")
				REFERENCES "user"("id")
				ON DELETE CASCADE`,
		},
		{
			name: "fk_plano_jogo_nodes_plano_id",
			stmt: `ALTER TABLE "plano_jogo_nodes"
				ADD CONSTRAINT "fk_plano_jogo_nodes_plano_id"
				FOREIGN KEY ("plano_id")
				REFERENCES "planos_jogo"("id")
				ON DELETE CASCADE`,
		},
		{
			name: "fk_plano_jogo_nodes_parent_id",
			stmt: `ALTER TABLE "plano_jogo_nodes"
				ADD CONSTRAINT "fk_plano_jogo_nodes_parent_id"
				FOREIGN KEY ("parent_id")
				REFERENCES "plano_jogo_nodes"("id")
				ON DELETE CASCADE`,
		},
		{
			name: "fk_treinos_imagens_treino_id",
			stmt: `ALTER TABLE "treinos_imagens"
				ADD CONSTRAINT "fk_treinos_imagens_treino_id"
				FOREIGN KEY ("treino_id")
				REFERENCES "treinos"("id")
				ON DELETE CASCADE`,
		},
		{
			name: "fk_competicoes_imagens_competicao_id",
			stmt: `ALTER TABLE "competicoes_imagens"
				ADD CONSTRAINT "fk_competicoes_imagens_competicao_id"
				FOREIGN KEY ("competicao_id")
				REFERENCES "competicoes"("id")
				ON DELETE CASCADE`,
		},
	}
	for _, fk := range constraints {
		exists := false
		if err := s.db.Raw(
			`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, fk.name,
		).Scan(&exists).Error; err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", fk.name, err)
		}
		if exists {
			continue
		}
		if err := s.db.Exec(fk.stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", fk.name, err)
		}
	}

	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
