package repository

import (
	"strings"
	"testing"

	"civicvoter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `jurisdiction,ballot_title,name,party,email,website,policies,level
Legislative District 43,State Representative Pos. 1,Dana Whitfield,Democratic,dana@example.org,https://dana.example.org,Education: Significantly increase funding through progressive taxation|Housing: Heavy investment in subsidized affordable housing,state
King County,County Executive,Marcus Oyelaran,Nonpartisan,marcus@example.org,,Environment: Aggressive action with mandatory emissions reductions,
City of Seattle,Mayor,Priya Raman,Nonpartisan,,,Homelessness: Housing-first approach with comprehensive services,city
Seattle Public Schools,School Board Director District 4,Jo Tran,Nonpartisan,,,,
`

func loadSample(t *testing.T) *CSVCandidateRepository {
	t.Helper()
	repo, err := NewCSVCandidateRepositoryFromReader(strings.NewReader(sampleDataset))
	require.NoError(t, err)
	return repo
}

func TestCSVCandidateRepository_Load(t *testing.T) {
	repo := loadSample(t)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 4)

	// IDs track row order.
	assert.Equal(t, "0", all[0].ID)
	assert.Equal(t, "3", all[3].ID)

	// Missing columns come back empty rather than failing the load.
	assert.Empty(t, all[0].Phone)
	assert.Empty(t, all[0].Statement)
}

func TestCSVCandidateRepository_LevelDerivation(t *testing.T) {
	repo := loadSample(t)
	all, err := repo.GetAll()
	require.NoError(t, err)

	// Explicit level column wins.
	assert.Equal(t, domain.LevelState, all[0].Level)
	assert.Equal(t, domain.LevelCity, all[2].Level)

	// Blank level falls back to jurisdiction heuristics.
	assert.Equal(t, domain.LevelCounty, all[1].Level)
	assert.Equal(t, domain.LevelSchool, all[3].Level)
}

func TestCSVCandidateRepository_Policies(t *testing.T) {
	repo := loadSample(t)

	c, err := repo.GetByID("0")
	require.NoError(t, err)
	require.Len(t, c.Policies, 2)
	assert.Equal(t, "Education", c.Policies[0].Category)
	assert.Equal(t, "Heavy investment in subsidized affordable housing", c.Policies[1].Position)

	empty, err := repo.GetByID("3")
	require.NoError(t, err)
	assert.Empty(t, empty.Policies)
}

func TestCSVCandidateRepository_GetByLevel(t *testing.T) {
	repo := loadSample(t)

	state, err := repo.GetByLevel(domain.LevelState)
	require.NoError(t, err)
	require.Len(t, state, 1)
	assert.Equal(t, "Dana Whitfield", state[0].Name)

	port, err := repo.GetByLevel(domain.LevelPort)
	require.NoError(t, err)
	assert.Empty(t, port)
}

func TestCSVCandidateRepository_GetByID_NotFound(t *testing.T) {
	repo := loadSample(t)

	_, err := repo.GetByID("99")
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCandidateNotFound, domainErr.Code)
}

func TestCSVCandidateRepository_RaggedRows(t *testing.T) {
	// Short rows must not break field access for trailing columns.
	data := "jurisdiction,name,party\nPort of Seattle,Sam Alvarez\n"
	repo, err := NewCSVCandidateRepositoryFromReader(strings.NewReader(data))
	require.NoError(t, err)

	c, err := repo.GetByID("0")
	require.NoError(t, err)
	assert.Equal(t, "Sam Alvarez", c.Name)
	assert.Empty(t, c.Party)
	assert.Equal(t, domain.LevelPort, c.Level)
}

func TestUnavailableCandidateRepository(t *testing.T) {
	repo := NewUnavailableCandidateRepository(assert.AnError)

	_, err := repo.GetAll()
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrDatasetUnavailable, domainErr.Code)

	_, err = repo.GetByID("0")
	assert.ErrorAs(t, err, &domainErr)
}
