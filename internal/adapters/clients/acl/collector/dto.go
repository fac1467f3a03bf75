// Package collector holds the wire shape of a submission as the remote
// collector expects it, and the translation from the domain record.
package collector

// SubmissionDTO is the POST body sent to the collector. Resources travel as a
// JSON-encoded string of ResourceDTO values rather than a nested array.
type SubmissionDTO struct {
	Name             string `json:"name"`
	WhatsApp         string `json:"whatsapp"`
	LinkedIn         string `json:"linkedin"`
	Email            string `json:"email"`
	Codebase         string `json:"codebase"`
	Demo             string `json:"demo"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	ProblemStatement string `json:"problemStatement"`
	Resources        string `json:"resources"`
}

// ResourceDTO is one filled resource inside SubmissionDTO.Resources. Item ids
// are local and never sent.
type ResourceDTO struct {
	Remark string `json:"remark"`
	Link   string `json:"link"`
}
