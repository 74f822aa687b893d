package repos

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/logger"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.User{}, &types.GamePlan{}, &types.GamePlanNode{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func seedPlan(t *testing.T, db *gorm.DB) *types.GamePlan {
	t.Helper()
	user := &types.User{ID: uuid.New(), Nome: "T", Email: uuid.NewString() + "@example.com", Senha: "h"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	plan := &types.GamePlan{ID: uuid.New(), UserID: user.ID, Nome: "Plano"}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return plan
}

func addNode(t *testing.T, repo GamePlanNodeRepo, planID uuid.UUID, parentID *string, nome string, ordem int) *types.GamePlanNode {
	t.Helper()
	node, err := repo.Create(context.Background(), nil, &types.GamePlanNode{
		ID:       uuid.NewString(),
		PlanoID:  planID,
		ParentID: parentID,
		Nome:     nome,
		Tipo:     types.NodeTipoPosition,
		Ordem:    ordem,
	})
	if err != nil {
		t.Fatalf("create node %s: %v", nome, err)
	}
	return node
}

func TestGamePlanNodeRepo_NextOrdemIsPerSiblingGroup(t *testing.T) {
	db := newTestDB(t)
	repo := NewGamePlanNodeRepo(db, testLogger())
	plan := seedPlan(t, db)
	ctx := context.Background()

	ordem, err := repo.NextOrdem(ctx, nil, plan.ID, nil)
	if err != nil {
		t.Fatalf("next ordem: %v", err)
	}
	if ordem != 0 {
		t.Fatalf("empty group should start at 0, got %d", ordem)
	}

	root := addNode(t, repo, plan.ID, nil, "Root", ordem)

	ordem, err = repo.NextOrdem(ctx, nil, plan.ID, nil)
	if err != nil {
		t.Fatalf("next ordem: %v", err)
	}
	if ordem != 1 {
		t.Fatalf("expected 1 after one root, got %d", ordem)
	}

	// Fresh sibling group under the root starts over at 0.
	ordem, err = repo.NextOrdem(ctx, nil, plan.ID, &root.ID)
	if err != nil {
		t.Fatalf("next ordem under root: %v", err)
	}
	if ordem != 0 {
		t.Fatalf("child group should start at 0, got %d", ordem)
	}

	addNode(t, repo, plan.ID, &root.ID, "Child", ordem)
	ordem, err = repo.NextOrdem(ctx, nil, plan.ID, &root.ID)
	if err != nil {
		t.Fatalf("next ordem under root: %v", err)
	}
	if ordem != 1 {
		t.Fatalf("expected 1 after one child, got %d", ordem)
	}
}

func TestGamePlanNodeRepo_GetByPlanIDOrdersRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewGamePlanNodeRepo(db, testLogger())
	plan := seedPlan(t, db)
	ctx := context.Background()

	addNode(t, repo, plan.ID, nil, "B", 1)
	rootA := addNode(t, repo, plan.ID, nil, "A", 0)
	addNode(t, repo, plan.ID, &rootA.ID, "A2", 1)
	addNode(t, repo, plan.ID, &rootA.ID, "A1", 0)

	rows, err := repo.GetByPlanID(ctx, nil, plan.ID)
	if err != nil {
		t.Fatalf("get by plan: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0].Nome != "A" || rows[1].Nome != "B" {
		t.Fatalf("root rows out of ordem order: %q, %q", rows[0].Nome, rows[1].Nome)
	}
	if rows[2].Nome != "A1" || rows[3].Nome != "A2" {
		t.Fatalf("sibling rows out of ordem order: %q, %q", rows[2].Nome, rows[3].Nome)
	}
}

func TestGamePlanNodeRepo_DeleteSubtreeRemovesDescendants(t *testing.T) {
	db := newTestDB(t)
	repo := NewGamePlanNodeRepo(db, testLogger())
	plan := seedPlan(t, db)
	ctx := context.Background()

	root := addNode(t, repo, plan.ID, nil, "Root", 0)
	keep := addNode(t, repo, plan.ID, nil, "Keep", 1)
	child := addNode(t, repo, plan.ID, &root.ID, "Child", 0)
	addNode(t, repo, plan.ID, &child.ID, "Grandchild", 0)

	if err := repo.DeleteSubtree(ctx, nil, plan.ID, root.ID); err != nil {
		t.Fatalf("delete subtree: %v", err)
	}

	rows, err := repo.GetByPlanID(ctx, nil, plan.ID)
	if err != nil {
		t.Fatalf("get by plan: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != keep.ID {
		t.Fatalf("expected only the sibling to survive, got %d rows", len(rows))
	}
}

func TestGamePlanNodeRepo_GetByIDScopedToPlan(t *testing.T) {
	db := newTestDB(t)
	repo := NewGamePlanNodeRepo(db, testLogger())
	plan := seedPlan(t, db)
	otherPlan := seedPlan(t, db)
	ctx := context.Background()

	node := addNode(t, repo, plan.ID, nil, "Root", 0)

	got, err := repo.GetByID(ctx, nil, otherPlan.ID, node.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got != nil {
		t.Fatalf("node leaked across plans")
	}
}
