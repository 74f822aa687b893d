package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
)

func newGamePlanService(t *testing.T) (GamePlanService, *planFixture) {
	t.Helper()
	db := newTestDB(t)
	log := testLogger()
	planRepo := repos.NewGamePlanRepo(db, log)
	nodeRepo := repos.NewGamePlanNodeRepo(db, log)
	svc := NewGamePlanService(db, log, NewMediaLinker("https://bjj.example.com"), planRepo, nodeRepo)
	user := seedUser(t, db)
	return svc, &planFixture{svc: svc, nodeRepo: nodeRepo, userID: user.ID}
}

type planFixture struct {
	svc      GamePlanService
	nodeRepo repos.GamePlanNodeRepo
	userID   uuid.UUID
}

func TestGamePlanService_CreateRequiresNome(t *testing.T) {
	svc, fx := newGamePlanService(t)

	_, err := svc.Create(authedCtx(fx.userID), CreatePlanInput{Nome: "  "})
	if apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGamePlanService_RequiresIdentity(t *testing.T) {
	svc, _ := newGamePlanService(t)

	_, err := svc.List(context.Background())
	if apierr.Status(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestGamePlanService_BuildsAndPrunesTree(t *testing.T) {
	svc, fx := newGamePlanService(t)
	ctx := authedCtx(fx.userID)

	plan, err := svc.Create(ctx, CreatePlanInput{Nome: "Guard Passing"})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if len(plan.Nodes) != 0 {
		t.Fatalf("new plan should have no nodes")
	}

	withA, err := svc.AddNode(ctx, plan.ID, AddNodeInput{Nome: "De La Riva", Tipo: "position"})
	if err != nil {
		t.Fatalf("add node A: %v", err)
	}
	if len(withA.Nodes) != 1 {
		t.Fatalf("expected 1 root, got %d", len(withA.Nodes))
	}
	nodeA := withA.Nodes[0]

	withB, err := svc.AddNode(ctx, plan.ID, AddNodeInput{Nome: "Half Guard", Tipo: "position"})
	if err != nil {
		t.Fatalf("add node B: %v", err)
	}
	if len(withB.Nodes) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(withB.Nodes))
	}
	if withB.Nodes[0].Nome != "De La Riva" || withB.Nodes[1].Nome != "Half Guard" {
		t.Fatalf("roots out of insertion order: %q, %q", withB.Nodes[0].Nome, withB.Nodes[1].Nome)
	}

	withC, err := svc.AddNode(ctx, plan.ID, AddNodeInput{
		ParentID: &nodeA.ID,
		Nome:     "Pass 1",
		Tipo:     "technique",
		VideoURL: "https://cdn.example.com/videos/clip123.mp4",
	})
	if err != nil {
		t.Fatalf("add node C: %v", err)
	}
	if len(withC.Nodes) != 2 {
		t.Fatalf("child must not appear as root")
	}
	children := withC.Nodes[0].Children
	if len(children) != 1 || children[0].Nome != "Pass 1" {
		t.Fatalf("expected Pass 1 under De La Riva, got %+v", children)
	}
	wantVideo := "https://bjj.example.com/assets/imagens/arquivos/tecnicas/videos/clip123.mp4"
	if children[0].VideoURL == nil || *children[0].VideoURL != wantVideo {
		t.Fatalf("video URL not normalized and expanded: %v", children[0].VideoURL)
	}

	// Removing A takes its subtree with it.
	afterRemove, err := svc.RemoveNode(ctx, plan.ID, nodeA.ID)
	if err != nil {
		t.Fatalf("remove node: %v", err)
	}
	if len(afterRemove.Nodes) != 1 || afterRemove.Nodes[0].Nome != "Half Guard" {
		t.Fatalf("expected only Half Guard, got %+v", afterRemove.Nodes)
	}
	rows, err := fx.nodeRepo.GetByPlanID(ctx, nil, plan.ID)
	if err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("descendant row survived: %d rows", len(rows))
	}
}

func TestGamePlanService_AddNodeValidation(t *testing.T) {
	svc, fx := newGamePlanService(t)
	ctx := authedCtx(fx.userID)

	plan, err := svc.Create(ctx, CreatePlanInput{Nome: "Plano"})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	if _, err := svc.AddNode(ctx, plan.ID, AddNodeInput{Nome: "", Tipo: "position"}); apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("missing nome: expected 400, got %v", err)
	}
	if _, err := svc.AddNode(ctx, plan.ID, AddNodeInput{Nome: "X", Tipo: "banana"}); apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("invalid tipo: expected 400, got %v", err)
	}

	ghost := uuid.NewString()
	if _, err := svc.AddNode(ctx, plan.ID, AddNodeInput{Nome: "X", Tipo: "position", ParentID: &ghost}); apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("foreign parent: expected 400, got %v", err)
	}
}

func TestGamePlanService_ParentMustBelongToSamePlan(t *testing.T) {
	svc, fx := newGamePlanService(t)
	ctx := authedCtx(fx.userID)

	planA, err := svc.Create(ctx, CreatePlanInput{Nome: "A"})
	if err != nil {
		t.Fatalf("create plan A: %v", err)
	}
	planB, err := svc.Create(ctx, CreatePlanInput{Nome: "B"})
	if err != nil {
		t.Fatalf("create plan B: %v", err)
	}

	withRoot, err := svc.AddNode(ctx, planA.ID, AddNodeInput{Nome: "Root", Tipo: "position"})
	if err != nil {
		t.Fatalf("add root: %v", err)
	}
	rootID := withRoot.Nodes[0].ID

	_, err = svc.AddNode(ctx, planB.ID, AddNodeInput{Nome: "Stray", Tipo: "position", ParentID: &rootID})
	if apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("cross-plan parent: expected 400, got %v", err)
	}
}

func TestGamePlanService_OwnershipHidesPlans(t *testing.T) {
	svc, fx := newGamePlanService(t)

	plan, err := svc.Create(authedCtx(fx.userID), CreatePlanInput{Nome: "Meu plano"})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	other := uuid.New()
	if _, err := svc.Get(authedCtx(other), plan.ID); apierr.Status(err) != http.StatusNotFound {
		t.Fatalf("foreign get: expected 404, got %v", err)
	}
	if _, err := svc.Update(authedCtx(other), plan.ID, UpdatePlanInput{}); apierr.Status(err) != http.StatusNotFound {
		t.Fatalf("foreign update: expected 404, got %v", err)
	}
	if err := svc.Delete(authedCtx(other), plan.ID); apierr.Status(err) != http.StatusNotFound {
		t.Fatalf("foreign delete: expected 404, got %v", err)
	}
}

func TestGamePlanService_UpdateIsPartial(t *testing.T) {
	svc, fx := newGamePlanService(t)
	ctx := authedCtx(fx.userID)

	plan, err := svc.Create(ctx, CreatePlanInput{Nome: "Original", Descricao: "d", Categoria: "c"})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	nova := "Nova descrição"
	updated, err := svc.Update(ctx, plan.ID, UpdatePlanInput{Descricao: &nova})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Nome != "Original" {
		t.Fatalf("nome changed on partial update: %q", updated.Nome)
	}
	if updated.Descricao != nova {
		t.Fatalf("descricao not updated: %q", updated.Descricao)
	}

	empty := " "
	if _, err := svc.Update(ctx, plan.ID, UpdatePlanInput{Nome: &empty}); apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("blank nome: expected 400, got %v", err)
	}
}

func TestGamePlanService_DeleteRemovesNodes(t *testing.T) {
	svc, fx := newGamePlanService(t)
	ctx := authedCtx(fx.userID)

	plan, err := svc.Create(ctx, CreatePlanInput{Nome: "Plano"})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if _, err := svc.AddNode(ctx, plan.ID, AddNodeInput{Nome: "Root", Tipo: "position"}); err != nil {
		t.Fatalf("add node: %v", err)
	}

	if err := svc.Delete(ctx, plan.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rows, err := fx.nodeRepo.GetByPlanID(ctx, nil, plan.ID)
	if err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("node rows survived plan delete: %d", len(rows))
	}
	if _, err := svc.Get(ctx, plan.ID); apierr.Status(err) != http.StatusNotFound {
		t.Fatalf("deleted plan still readable: %v", err)
	}
}
