package services

import "strings"

// Asset directories served by the file-delivery host. Only bare filenames
// are stored; full URLs exist solely in API responses.
const (
	techniqueVideoPath   = "assets/imagens/arquivos/tecnicas/videos/"
	techniquePosterPath  = "assets/imagens/arquivos/tecnicas/posters/"
	trainingImagePath    = "admin/assets/imagens/arquivos/treinos/"
	competitionImagePath = "admin/assets/imagens/arquivos/competicoes/"
	avatarImagePath      = "admin/assets/imagens/arquivos/perfil/"
)

// MediaLinker turns stored filenames into delivery URLs at the read boundary.
type MediaLinker struct {
	baseURL string
}

func NewMediaLinker(baseURL string) MediaLinker {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return MediaLinker{baseURL: baseURL}
}

func (m MediaLinker) link(dir, file string) *string {
	if file == "" {
		return nil
	}
	u := m.baseURL + dir + file
	return &u
}

func (m MediaLinker) TechniqueVideoURL(file string) *string {
	return m.link(techniqueVideoPath, file)
}

func (m MediaLinker) TechniquePosterURL(file string) *string {
	return m.link(techniquePosterPath, file)
}

func (m MediaLinker) TrainingImageURL(file string) string {
	if u := m.link(trainingImagePath, file); u != nil {
		return *u
	}
	return ""
}

func (m MediaLinker) CompetitionImageURL(file string) string {
	if u := m.link(competitionImagePath, file); u != nil {
		return *u
	}
	return ""
}

func (m MediaLinker) AvatarURL(file string) string {
	if u := m.link(avatarImagePath, file); u != nil {
		return *u
	}
	return ""
}
