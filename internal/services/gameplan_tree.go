package services

import (
	"github.com/google/uuid"

	"github.com/bjjtrainer/bjjtrainer-backend/internal/types"
)

// NodeTree is the nested read model of a game-plan node. Video and poster
// fields carry full delivery URLs here, built from the stored filenames.
type NodeTree struct {
	ID          string      `json:"id"`
	ParentID    *string     `json:"parentId"`
	Nome        string      `json:"nome"`
	Tipo        string      `json:"tipo"`
	Descricao   string      `json:"descricao"`
	TecnicaID   *uuid.UUID  `json:"tecnicaId"`
	Categoria   string      `json:"categoria"`
	Posicao     string      `json:"posicao"`
	Passos      []string    `json:"passos"`
	Observacoes []string    `json:"observacoes"`
	VideoURL    *string     `json:"video_url"`
	VideoPoster *string     `json:"video_poster"`
	Video       bool        `json:"video"`
	Children    []*NodeTree `json:"children"`
}

// assembleNodeTrees rebuilds the nested tree from the flat rows in a single
// pass. Input must already be ordered by (parent_id, ordem); children keep
// the input order, so sibling order falls out of the query ordering. A node
// whose parent is not in the input set is promoted to a root rather than
// dropped — cross-plan corruption degrades visibly instead of erroring.
func assembleNodeTrees(nodes []*types.GamePlanNode, media MediaLinker) []*NodeTree {
	wrappers := make(map[string]*NodeTree, len(nodes))
	ordered := make([]*NodeTree, 0, len(nodes))

	for _, n := range nodes {
		passos := []string(n.Passos)
		if passos == nil {
			passos = []string{}
		}
		observacoes := []string(n.Observacoes)
		if observacoes == nil {
			observacoes = []string{}
		}
		w := &NodeTree{
			ID:          n.ID,
			ParentID:    n.ParentID,
			Nome:        n.Nome,
			Tipo:        n.Tipo,
			Descricao:   n.Descricao,
			TecnicaID:   n.TecnicaID,
			Categoria:   n.Categoria,
			Posicao:     n.Posicao,
			Passos:      passos,
			Observacoes: observacoes,
			VideoURL:    media.TechniqueVideoURL(n.VideoFile),
			VideoPoster: media.TechniquePosterURL(n.PosterFile),
			Video:       n.Video,
			Children:    []*NodeTree{},
		}
		wrappers[n.ID] = w
		ordered = append(ordered, w)
	}

	roots := make([]*NodeTree, 0, len(ordered))
	for _, w := range ordered {
		if w.ParentID != nil && *w.ParentID != "" {
			if parent, ok := wrappers[*w.ParentID]; ok {
				parent.Children = append(parent.Children, w)
				continue
			}
		}
		roots = append(roots, w)
	}

	return roots
}
