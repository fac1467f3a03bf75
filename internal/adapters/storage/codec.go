// Package storage implements ports.DraftStore on three backends: a JSON file
// per slot, a SQLite table, and process memory. All backends share one JSON
// encoding so a draft written by one can be read by another.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
)

// draftDTO is the persisted shape of a record. Field names match the form's
// external keys.
type draftDTO struct {
	Name             string        `json:"name"`
	WhatsApp         string        `json:"whatsapp"`
	LinkedIn         string        `json:"linkedin"`
	Email            string        `json:"email"`
	Codebase         string        `json:"codebase"`
	Demo             string        `json:"demo"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	ProblemStatement string        `json:"problemStatement"`
	Resources        []resourceDTO `json:"resources"`
}

type resourceDTO struct {
	ID     string `json:"id"`
	Remark string `json:"remark"`
	Link   string `json:"link"`
}

func encode(rec submission.Record) ([]byte, error) {
	dto := draftDTO{
		Name:             rec.Name,
		WhatsApp:         rec.WhatsApp,
		LinkedIn:         rec.LinkedIn,
		Email:            rec.Email,
		Codebase:         rec.Codebase,
		Demo:             rec.Demo,
		Title:            rec.Title,
		Description:      rec.Description,
		ProblemStatement: rec.ProblemStatement,
		Resources:        make([]resourceDTO, 0, len(rec.Resources)),
	}
	for _, item := range rec.Resources {
		dto.Resources = append(dto.Resources, resourceDTO(item))
	}

	data, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("encoding draft: %w", err)
	}
	return data, nil
}

// decode parses a stored draft. Malformed payloads wrap domain.ErrPersistence.
// Missing keys decode as empty values; id repair is left to the caller.
func decode(data []byte) (submission.Record, error) {
	var dto draftDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return submission.Record{}, fmt.Errorf("%w: decoding draft: %w", domain.ErrPersistence, err)
	}

	rec := submission.Record{
		Name:             dto.Name,
		WhatsApp:         dto.WhatsApp,
		LinkedIn:         dto.LinkedIn,
		Email:            dto.Email,
		Codebase:         dto.Codebase,
		Demo:             dto.Demo,
		Title:            dto.Title,
		Description:      dto.Description,
		ProblemStatement: dto.ProblemStatement,
		Resources:        make([]submission.ResourceItem, 0, len(dto.Resources)),
	}
	for _, item := range dto.Resources {
		rec.Resources = append(rec.Resources, submission.ResourceItem(item))
	}
	return rec, nil
}
