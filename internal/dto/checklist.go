package dto

// ChecklistResponse is the completion state of one named checklist. Items
// maps item keys to their done flag; absent keys default to false.
type ChecklistResponse struct {
	Name  string          `json:"name"`
	Items map[string]bool `json:"items"`
}

// UpdateChecklistRequest is the payload for PUT /api/checklist/:name.
type UpdateChecklistRequest struct {
	Items map[string]bool `json:"items"`
}
