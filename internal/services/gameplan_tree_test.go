package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

func strPtr(s string) *string { return &s }

func flatNode(id string, parentID *string, nome string, ordem int) *types.GamePlanNode {
	return &types.GamePlanNode{
		ID:       id,
		PlanoID:  uuid.New(),
		ParentID: parentID,
		Nome:     nome,
		Tipo:     types.NodeTipoPosition,
		Ordem:    ordem,
	}
}

func TestAssembleNodeTrees_NestsChildrenUnderParents(t *testing.T) {
	media := NewMediaLinker("https://bjj.example.com")
	nodes := []*types.GamePlanNode{
		flatNode("a", nil, "De La Riva", 0),
		flatNode("b", nil, "Half Guard", 1),
		flatNode("c", strPtr("a"), "Pass 1", 0),
		flatNode("d", strPtr("a"), "Pass 2", 1),
	}

	roots := assembleNodeTrees(nodes, media)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].Nome != "De La Riva" || roots[1].Nome != "Half Guard" {
		t.Fatalf("unexpected root order: %q, %q", roots[0].Nome, roots[1].Nome)
	}
	if len(roots[0].Children) != 2 {
		t.Fatalf("expected 2 children under root, got %d", len(roots[0].Children))
	}
	if roots[0].Children[0].Nome != "Pass 1" || roots[0].Children[1].Nome != "Pass 2" {
		t.Fatalf("children lost input order: %q, %q", roots[0].Children[0].Nome, roots[0].Children[1].Nome)
	}
	if len(roots[1].Children) != 0 {
		t.Fatalf("expected no children under second root, got %d", len(roots[1].Children))
	}
}

func TestAssembleNodeTrees_PromotesOrphansToRoots(t *testing.T) {
	media := NewMediaLinker("")
	nodes := []*types.GamePlanNode{
		flatNode("a", nil, "Root", 0),
		flatNode("x", strPtr("missing"), "Orphan", 0),
	}

	roots := assembleNodeTrees(nodes, media)
	if len(roots) != 2 {
		t.Fatalf("expected orphan promoted to root, got %d roots", len(roots))
	}
	if roots[1].Nome != "Orphan" {
		t.Fatalf("expected orphan last, got %q", roots[1].Nome)
	}
}

func TestAssembleNodeTrees_EmptyInput(t *testing.T) {
	roots := assembleNodeTrees(nil, NewMediaLinker(""))
	if roots == nil {
		t.Fatalf("expected non-nil slice")
	}
	if len(roots) != 0 {
		t.Fatalf("expected empty result, got %d", len(roots))
	}
}

func TestAssembleNodeTrees_ExpandsMediaURLs(t *testing.T) {
	media := NewMediaLinker("https://bjj.example.com")
	node := flatNode("a", nil, "Armbar", 0)
	node.VideoFile = "clip123.mp4"
	node.PosterFile = "clip123.jpg"

	roots := assembleNodeTrees([]*types.GamePlanNode{node}, media)
	if roots[0].VideoURL == nil {
		t.Fatalf("expected video URL")
	}
	want := "https://bjj.example.com/assets/imagens/arquivos/tecnicas/videos/clip123.mp4"
	if *roots[0].VideoURL != want {
		t.Fatalf("video URL = %q, want %q", *roots[0].VideoURL, want)
	}
	wantPoster := "https://bjj.example.com/assets/imagens/arquivos/tecnicas/posters/clip123.jpg"
	if roots[0].VideoPoster == nil || *roots[0].VideoPoster != wantPoster {
		t.Fatalf("poster URL mismatch: %v", roots[0].VideoPoster)
	}
}

func TestAssembleNodeTrees_NilMediaFieldsStayNil(t *testing.T) {
	roots := assembleNodeTrees([]*types.GamePlanNode{flatNode("a", nil, "N", 0)}, NewMediaLinker("https://bjj.example.com"))
	if roots[0].VideoURL != nil || roots[0].VideoPoster != nil {
		t.Fatalf("expected nil media URLs for empty filenames")
	}
	if roots[0].Passos == nil || roots[0].Observacoes == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}

func TestAssembleNodeTrees_Idempotent(t *testing.T) {
	media := NewMediaLinker("")
	nodes := []*types.GamePlanNode{
		flatNode("a", nil, "Root", 0),
		flatNode("b", strPtr("a"), "Child", 0),
	}

	first := assembleNodeTrees(nodes, media)
	second := assembleNodeTrees(nodes, media)
	if len(first) != len(second) {
		t.Fatalf("root counts differ: %d vs %d", len(first), len(second))
	}
	if len(first[0].Children) != 1 || len(second[0].Children) != 1 {
		t.Fatalf("reassembly changed child counts")
	}
}
