package services

import (
	"sync"
	"testing"

	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeadRepo struct {
	mu    sync.Mutex
	leads []models.Lead
}

func (r *fakeLeadRepo) Create(lead *models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, *lead)
	return nil
}

func (r *fakeLeadRepo) GetRecent(limit int) ([]models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.leads, nil
}

func TestScoreLead_AllFactorsAccumulate(t *testing.T) {
	score := ScoreLead(&models.CreateLeadRequest{
		Budget:            "over-5000",  // 30
		Timeline:          "immediately", // 20
		CompanySize:       "200+",        // 20
		InterestedModules: []string{"phone", "chat", "social"}, // 15
	})

	assert.Equal(t, "85", score)
}

func TestScoreLead_EmptyPayloadScoresZero(t *testing.T) {
	assert.Equal(t, "0", ScoreLead(&models.CreateLeadRequest{}))
}

func TestScoreLead_PartialPayload(t *testing.T) {
	score := ScoreLead(&models.CreateLeadRequest{
		Budget:            "under-500", // 10
		InterestedModules: []string{"chat"}, // 5
	})

	assert.Equal(t, "15", score)
}

func TestScoreLead_UnknownTiersContributeNothing(t *testing.T) {
	score := ScoreLead(&models.CreateLeadRequest{
		Budget:      "a-million",
		Timeline:    "someday",
		CompanySize: "galactic",
	})

	assert.Equal(t, "0", score)
}

func TestCreateLead_StoresScoredLead(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := NewLeadService(repo)

	lead, err := svc.CreateLead(&models.CreateLeadRequest{
		Name:              "Ada",
		Email:             "ada@example.com",
		Budget:            "1000-2500",
		Timeline:          "1-month",
		CompanySize:       "11-50",
		InterestedModules: []string{"phone", "chat"},
	})
	require.NoError(t, err)

	// 20 + 15 + 10 + 10
	assert.Equal(t, "55", lead.Score)
	require.Len(t, repo.leads, 1)
	assert.Equal(t, "ada@example.com", repo.leads[0].Email)
}

func TestCreateLead_RequiresNameAndEmail(t *testing.T) {
	svc := NewLeadService(&fakeLeadRepo{})

	_, err := svc.CreateLead(&models.CreateLeadRequest{Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateLead(&models.CreateLeadRequest{Name: "Ada"})
	assert.ErrorIs(t, err, ErrValidation)
}
