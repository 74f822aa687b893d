package services

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/apierr"
	"github.com/bjjtrainer/bjjtrainer-backend/internal/repos"
)

func newNoteService(t *testing.T) (NoteService, uuid.UUID) {
	t.Helper()
	db := newTestDB(t)
	log := testLogger()
	svc := NewNoteService(db, log, repos.NewNoteRepo(db, log))
	user := seedUser(t, db)
	return svc, user.ID
}

func TestNoteService_CreateRequiresTituloAndConteudo(t *testing.T) {
	svc, userID := newNoteService(t)

	_, err := svc.Create(authedCtx(userID), CreateNoteInput{Titulo: "x"})
	if apierr.Status(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestNoteService_ListFiltersAndPaginates(t *testing.T) {
	svc, userID := newNoteService(t)
	ctx := authedCtx(userID)

	for i := 0; i < 5; i++ {
		tag := "drill"
		if i%2 == 0 {
			tag = "conceito"
		}
		_, err := svc.Create(ctx, CreateNoteInput{
			Titulo:   fmt.Sprintf("Nota %d", i),
			Conteudo: "conteúdo sobre berimbolo",
			Tag:      tag,
		})
		if err != nil {
			t.Fatalf("create note %d: %v", i, err)
		}
	}

	page, err := svc.List(ctx, ListNotesInput{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}
	if page.Pagination.TotalItems != 5 || page.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected pagination: %+v", page.Pagination)
	}

	tagged, err := svc.List(ctx, ListNotesInput{Tag: "drill"})
	if err != nil {
		t.Fatalf("list by tag: %v", err)
	}
	if tagged.Pagination.TotalItems != 2 {
		t.Fatalf("tag filter: expected 2, got %d", tagged.Pagination.TotalItems)
	}

	searched, err := svc.List(ctx, ListNotesInput{Termo: "berimbolo"})
	if err != nil {
		t.Fatalf("list by termo: %v", err)
	}
	if searched.Pagination.TotalItems != 5 {
		t.Fatalf("termo filter: expected 5, got %d", searched.Pagination.TotalItems)
	}
}

func TestNoteService_OwnershipHidesNotes(t *testing.T) {
	svc, userID := newNoteService(t)

	note, err := svc.Create(authedCtx(userID), CreateNoteInput{Titulo: "T", Conteudo: "C"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	other := authedCtx(uuid.New())
	if _, err := svc.Get(other, note.ID); apierr.Status(err) != http.StatusNotFound {
		t.Fatalf("foreign get: expected 404, got %v", err)
	}
	if err := svc.Delete(other, note.ID); apierr.Status(err) != http.StatusNotFound {
		t.Fatalf("foreign delete: expected 404, got %v", err)
	}

	list, err := svc.List(other, ListNotesInput{})
	if err != nil {
		t.Fatalf("foreign list: %v", err)
	}
	if len(list.Items) != 0 {
		t.Fatalf("foreign list leaked %d notes", len(list.Items))
	}
}

func TestNoteService_UpdateIsPartial(t *testing.T) {
	svc, userID := newNoteService(t)
	ctx := authedCtx(userID)

	note, err := svc.Create(ctx, CreateNoteInput{Titulo: "Original", Conteudo: "C", Tag: "drill"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tag := "conceito"
	updated, err := svc.Update(ctx, note.ID, UpdateNoteInput{Tag: &tag})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Titulo != "Original" || updated.Tag != "conceito" {
		t.Fatalf("partial update wrong: %+v", updated)
	}
}
