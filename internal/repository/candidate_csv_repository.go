package repository

import (
	"civicvoter/internal/domain"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVCandidateRepository serves candidate records parsed once from a tabular
// dataset file. Records are immutable after load; IDs are derived from the
// row index and are stable only within one load.
type CSVCandidateRepository struct {
	candidates []domain.Candidate
	byLevel    map[domain.Level][]domain.Candidate
	byID       map[string]*domain.Candidate
}

// NewCSVCandidateRepository loads the candidate dataset from a CSV file.
func NewCSVCandidateRepository(path string) (*CSVCandidateRepository, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open candidate dataset %s: %w", path, err)
	}
	defer file.Close()
	return NewCSVCandidateRepositoryFromReader(file)
}

// NewCSVCandidateRepositoryFromReader parses the candidate dataset from any
// reader. The first row is the header; field access is header-based and a
// missing column yields an empty string, never an error.
func NewCSVCandidateRepositoryFromReader(r io.Reader) (*CSVCandidateRepository, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows degrade to empty fields

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normalizeColumn(name)] = i
	}

	repo := &CSVCandidateRepository{
		byLevel: make(map[domain.Level][]domain.Candidate),
		byID:    make(map[string]*domain.Candidate),
	}

	for index := 0; ; index++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %w", index, err)
		}

		field := func(name string) string {
			col, ok := columns[name]
			if !ok || col >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[col])
		}

		candidate := domain.Candidate{
			ID:                     strconv.Itoa(index),
			Jurisdiction:           field("jurisdiction"),
			BallotTitle:            field("ballot_title"),
			Name:                   field("name"),
			Party:                  field("party"),
			Email:                  field("email"),
			Phone:                  field("phone"),
			Website:                field("website"),
			ElectedExperience:      field("elected_experience"),
			ProfessionalExperience: field("professional_experience"),
			Education:              field("education"),
			CommunityService:       field("community_service"),
			Statement:              field("statement"),
			Policies:               parsePolicies(field("policies")),
		}

		if level, err := domain.ParseLevel(field("level")); err == nil {
			candidate.Level = level
		} else {
			candidate.Level = domain.DeriveLevel(candidate.Jurisdiction)
		}

		repo.candidates = append(repo.candidates, candidate)
	}

	for i := range repo.candidates {
		c := &repo.candidates[i]
		repo.byLevel[c.Level] = append(repo.byLevel[c.Level], *c)
		repo.byID[c.ID] = c
	}

	return repo, nil
}

// normalizeColumn makes header lookup forgiving about case and spacing
// ("Ballot Title" and "ballot_title" address the same column).
func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

// parsePolicies decodes the optional policies column: pipe-separated
// "Category: Position" pairs. Anything unparseable is skipped.
func parsePolicies(raw string) []domain.Policy {
	if raw == "" {
		return nil
	}
	var policies []domain.Policy
	for _, pair := range strings.Split(raw, "|") {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			continue
		}
		category := strings.TrimSpace(parts[0])
		position := strings.TrimSpace(parts[1])
		if category == "" || position == "" {
			continue
		}
		policies = append(policies, domain.Policy{Category: category, Position: position})
	}
	return policies
}

// GetAll returns every candidate in dataset order.
func (r *CSVCandidateRepository) GetAll() ([]domain.Candidate, error) {
	return r.candidates, nil
}

// GetByLevel returns the candidates for one election level, in dataset order.
func (r *CSVCandidateRepository) GetByLevel(level domain.Level) ([]domain.Candidate, error) {
	return r.byLevel[level], nil
}

// GetByID returns a single candidate by its row-derived ID.
func (r *CSVCandidateRepository) GetByID(id string) (*domain.Candidate, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.NewCandidateNotFoundError(id)
	}
	return c, nil
}

// UnavailableCandidateRepository stands in when the dataset failed to load.
// Every read reports the load failure so candidate views render a clear
// "could not load candidates" state instead of crashing or spinning.
type UnavailableCandidateRepository struct {
	cause error
}

func NewUnavailableCandidateRepository(cause error) *UnavailableCandidateRepository {
	return &UnavailableCandidateRepository{cause: cause}
}

func (r *UnavailableCandidateRepository) GetAll() ([]domain.Candidate, error) {
	return nil, domain.NewDatasetUnavailableError(r.cause)
}

func (r *UnavailableCandidateRepository) GetByLevel(domain.Level) ([]domain.Candidate, error) {
	return nil, domain.NewDatasetUnavailableError(r.cause)
}

func (r *UnavailableCandidateRepository) GetByID(string) (*domain.Candidate, error) {
	return nil, domain.NewDatasetUnavailableError(r.cause)
}
