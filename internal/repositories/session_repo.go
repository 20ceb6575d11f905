package repositories

import (
	"time"

	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepo interface {
	Create(session *models.ChatSession) error
	GetByID(id uuid.UUID) (*models.ChatSession, error)
	MarkLeadCaptured(id uuid.UUID) error
	End(id uuid.UUID, endedAt time.Time) error
	EndIdleBefore(cutoff time.Time) (int64, error)
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(session *models.ChatSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepo) GetByID(id uuid.UUID) (*models.ChatSession, error) {
	var session models.ChatSession
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) MarkLeadCaptured(id uuid.UUID) error {
	return r.db.Model(&models.ChatSession{}).
		Where("id = ?", id).
		Update("is_lead_captured", true).Error
}

// End sets the terminal timestamp. Already-ended sessions keep their
// original end time.
func (r *sessionRepo) End(id uuid.UUID, endedAt time.Time) error {
	return r.db.Model(&models.ChatSession{}).
		Where("id = ? AND ended_at IS NULL", id).
		Update("ended_at", endedAt).Error
}

// EndIdleBefore terminates open sessions whose last message (or start,
// for empty sessions) predates cutoff. Used only by the optional sweep.
func (r *sessionRepo) EndIdleBefore(cutoff time.Time) (int64, error) {
	res := r.db.Model(&models.ChatSession{}).
		Where("ended_at IS NULL").
		Where(`COALESCE(
			(SELECT MAX(created_at) FROM chat_messages WHERE chat_messages.session_id = chat_sessions.id),
			chat_sessions.started_at
		) < ?`, cutoff).
		Update("ended_at", time.Now())
	return res.RowsAffected, res.Error
}
