package repository

import "civicvoter/internal/domain"

// StaticElectionRepository serves the built-in election calendar.
type StaticElectionRepository struct {
	elections []domain.Election
}

func NewStaticElectionRepository() *StaticElectionRepository {
	return &StaticElectionRepository{elections: elections}
}

// GetAll returns every election in calendar order (upcoming first).
func (r *StaticElectionRepository) GetAll() []domain.Election {
	return r.elections
}

// NextElection returns the first future election, falling back to the first
// entry when none is upcoming.
func (r *StaticElectionRepository) NextElection() *domain.Election {
	for i := range r.elections {
		if r.elections[i].Type == domain.ElectionFuture {
			return &r.elections[i]
		}
	}
	if len(r.elections) == 0 {
		return nil
	}
	return &r.elections[0]
}

var elections = []domain.Election{
	{ID: "nov-2026", Name: "2026 November General Election", Date: "2026-11-03", Type: domain.ElectionFuture},
	{ID: "aug-2026", Name: "2026 August Primary", Date: "2026-08-04", Type: domain.ElectionPast},
	{ID: "nov-2025", Name: "2025 November General Election", Date: "2025-11-04", Type: domain.ElectionPast},
	{ID: "aug-2025", Name: "2025 August Primary", Date: "2025-08-05", Type: domain.ElectionPast},
}
