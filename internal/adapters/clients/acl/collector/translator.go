package collector

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
)

// ToSubmissionDTO converts a record into the collector payload. Resources with
// neither a remark nor a link are dropped; the rest keep their order.
func ToSubmissionDTO(rec submission.Record) (SubmissionDTO, error) {
	filled := rec.FilledResources()
	resources := make([]ResourceDTO, 0, len(filled))
	for _, item := range filled {
		resources = append(resources, ResourceDTO{Remark: item.Remark, Link: item.Link})
	}

	encoded, err := json.Marshal(resources)
	if err != nil {
		return SubmissionDTO{}, fmt.Errorf("encoding resources: %w", err)
	}

	return SubmissionDTO{
		Name:             rec.Name,
		WhatsApp:         rec.WhatsApp,
		LinkedIn:         rec.LinkedIn,
		Email:            rec.Email,
		Codebase:         rec.Codebase,
		Demo:             rec.Demo,
		Title:            rec.Title,
		Description:      rec.Description,
		ProblemStatement: rec.ProblemStatement,
		Resources:        string(encoded),
	}, nil
}
