package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
)

func newTrainingService(t *testing.T) (TrainingService, uuid.UUID) {
	t.Helper()
	db := newTestDB(t)
	log := testLogger()
	svc := NewTrainingService(db, log, NewMediaLinker("https://bjj.example.com"), repos.NewTrainingRepo(db, log))
	user := seedUser(t, db)
	return svc, user.ID
}

func TestTrainingService_CreateRequiresTipoAndDiaSemana(t *testing.T) {
	svc, userID := newTrainingService(t)

	_, err := svc.Create(authedCtx(userID), CreateTrainingInput{Tipo: "gi"})
	if apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTrainingService_ImagesRoundTrip(t *testing.T) {
	svc, userID := newTrainingService(t)
	ctx := authedCtx(userID)

	session, err := svc.Create(ctx, CreateTrainingInput{Tipo: "gi", DiaSemana: "segunda", NumeroAula: 12})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	withImages, err := svc.AddImages(ctx, session.ID, []string{
		"https://bjj.example.com/admin/assets/imagens/arquivos/treinos/foto1.jpg",
		"foto2.jpg",
	})
	if err != nil {
		t.Fatalf("add images: %v", err)
	}
	if len(withImages.Imagens) != 2 {
		t.Fatalf("expected 2 images, got %d", len(withImages.Imagens))
	}
	want := "https://bjj.example.com/admin/assets/imagens/arquivos/treinos/foto1.jpg"
	found := false
	for _, img := range withImages.Imagens {
		if img.URL == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q among %+v", want, withImages.Imagens)
	}

	if err := svc.DeleteImage(ctx, session.ID, withImages.Imagens[0].ID); err != nil {
		t.Fatalf("delete image: %v", err)
	}
	after, err := svc.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(after.Imagens) != 1 {
		t.Fatalf("expected 1 image left, got %d", len(after.Imagens))
	}

	if _, err := svc.AddImages(ctx, session.ID, []string{"", "   "}); apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("blank filenames: expected 400, got %v", err)
	}
}

func TestTrainingService_ListFiltersByTipo(t *testing.T) {
	svc, userID := newTrainingService(t)
	ctx := authedCtx(userID)

	for _, tipo := range []string{"gi", "gi", "nogi"} {
		if _, err := svc.Create(ctx, CreateTrainingInput{Tipo: tipo, DiaSemana: "terca"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := svc.List(ctx, ListTrainingInput{Tipo: "gi"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Pagination.TotalItems != 2 {
		t.Fatalf("expected 2 gi sessions, got %d", page.Pagination.TotalItems)
	}
}

func TestTrainingService_VisibilityToggle(t *testing.T) {
	svc, userID := newTrainingService(t)
	ctx := authedCtx(userID)

	session, err := svc.Create(ctx, CreateTrainingInput{Tipo: "gi", DiaSemana: "quarta"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if session.Publico {
		t.Fatalf("new session should be private")
	}

	updated, err := svc.SetVisibility(ctx, session.ID, true)
	if err != nil {
		t.Fatalf("set visibility: %v", err)
	}
	if !updated.Publico {
		t.Fatalf("visibility not persisted")
	}
}

func TestTrainingService_OwnershipHidesSessions(t *testing.T) {
	svc, userID := newTrainingService(t)

	session, err := svc.Create(authedCtx(userID), CreateTrainingInput{Tipo: "gi", DiaSemana: "sexta"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	other := authedCtx(uuid.New())
	if _, err := svc.Get(other, session.ID); apierr.Status(err) != http.StatusNotFound {
		t.Fatalf("foreign get: expected 404, got %v", err)
	}
	if err := svc.Delete(other, session.ID); apierr.Status(err) != http.StatusNotFound {
		t.Fatalf("foreign delete: expected 404, got %v", err)
	}
}
