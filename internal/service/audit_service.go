package service

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService persists the transition trail. A failed audit write is never
// surfaced to the caller: by the time it runs, the remote write has already
// committed.
type AuditService interface {
	LogTransition(ctx context.Context, userID *uuid.UUID, action, appointmentID string, oldValue, newValue interface{}) error
	RecentEntries(ctx context.Context, limit int) ([]entity.AuditLog, error)
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogTransition records one confirmed status or payment-status change
func (s *auditService) LogTransition(ctx context.Context, userID *uuid.UUID, action, appointmentID string, oldValue, newValue interface{}) error {
	metadata := entity.JSON{
		"entity":    "appointment",
		"entity_id": appointmentID,
		"old_value": oldValue,
		"new_value": newValue,
	}

	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func (s *auditService) RecentEntries(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.auditRepo.FindRecent(s.db.WithContext(ctx), limit)
}
