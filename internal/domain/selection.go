package domain

// MaxComparedCandidates bounds how many candidates can be selected for
// side-by-side comparison.
const MaxComparedCandidates = 3

// Selection is the insertion-ordered set of candidates chosen for comparison.
// A selection is scoped to one election level; switching levels starts a new,
// empty selection.
type Selection struct {
	Level        Level    `json:"level"`
	CandidateIDs []string `json:"candidate_ids"`
}

// Contains reports whether the candidate is currently selected.
func (s *Selection) Contains(candidateID string) bool {
	for _, id := range s.CandidateIDs {
		if id == candidateID {
			return true
		}
	}
	return false
}

// Toggle adds the candidate if absent and removes it if present. Adding while
// already at MaxComparedCandidates members is a no-op, not an error and not an
// eviction. It reports whether the selection changed.
func (s *Selection) Toggle(candidateID string) bool {
	for i, id := range s.CandidateIDs {
		if id == candidateID {
			s.CandidateIDs = append(s.CandidateIDs[:i], s.CandidateIDs[i+1:]...)
			return true
		}
	}
	if len(s.CandidateIDs) >= MaxComparedCandidates {
		return false
	}
	s.CandidateIDs = append(s.CandidateIDs, candidateID)
	return true
}
