package services

import (
	"fmt"
	"log"
	"strconv"

	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/aidevelo/aidevelo-ai-be/internal/repositories"
)

// LeadService stores contact-form submissions and assigns the coarse
// triage score. Scoring is purely additive, no normalization and no
// upper bound.
type LeadService struct {
	leads repositories.LeadRepo
}

func NewLeadService(leads repositories.LeadRepo) *LeadService {
	return &LeadService{leads: leads}
}

// CreateLead validates, scores and stores one submission.
func (s *LeadService) CreateLead(req *models.CreateLeadRequest) (*models.Lead, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	lead := &models.Lead{
		Name:              req.Name,
		Email:             req.Email,
		Company:           req.Company,
		Phone:             req.Phone,
		Message:           req.Message,
		Budget:            req.Budget,
		Timeline:          req.Timeline,
		CompanySize:       req.CompanySize,
		InterestedModules: req.InterestedModules,
		Score:             ScoreLead(req),
	}

	if err := s.leads.Create(lead); err != nil {
		return nil, err
	}

	log.Printf("📇 Lead stored: %s (score %s)", lead.Email, lead.Score)
	return lead, nil
}

// ScoreLead converts a contact-form payload into the string-encoded
// lead-quality score used for downstream triage.
func ScoreLead(req *models.CreateLeadRequest) string {
	score := budgetPoints(req.Budget) +
		timelinePoints(req.Timeline) +
		companySizePoints(req.CompanySize) +
		modulePoints(len(req.InterestedModules))

	return strconv.Itoa(score)
}

// budgetPoints: 10-30 depending on tier.
func budgetPoints(budget string) int {
	switch budget {
	case "under-500":
		return 10
	case "500-1000":
		return 15
	case "1000-2500":
		return 20
	case "2500-5000":
		return 25
	case "over-5000":
		return 30
	default:
		return 0
	}
}

// timelinePoints: 5-20, sooner is hotter.
func timelinePoints(timeline string) int {
	switch timeline {
	case "immediately":
		return 20
	case "1-month":
		return 15
	case "3-months":
		return 10
	case "exploring":
		return 5
	default:
		return 0
	}
}

// companySizePoints: 5-20 by headcount band.
func companySizePoints(size string) int {
	switch size {
	case "1-10":
		return 5
	case "11-50":
		return 10
	case "51-200":
		return 15
	case "200+":
		return 20
	default:
		return 0
	}
}

// modulePoints: 5-15 by number of interested modules.
func modulePoints(count int) int {
	switch {
	case count >= 3:
		return 15
	case count == 2:
		return 10
	case count == 1:
		return 5
	default:
		return 0
	}
}
