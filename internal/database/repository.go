package database

import (
	"time"

	"gorm.io/gorm"
)

type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) CreateSession(s *SessionRecord) error {
	return r.db.Create(s).Error
}

func (r *JournalRepository) CloseSession(id uint, status string) error {
	now := time.Now()
	return r.db.Model(&SessionRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":    status,
			"closed_at": &now,
		}).Error
}

func (r *JournalRepository) GetSessionByID(id uint) (*SessionRecord, error) {
	var record SessionRecord
	if err := r.db.First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *JournalRepository) ListSessions(limit, offset int) ([]SessionRecord, error) {
	var records []SessionRecord
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *JournalRepository) CreateAction(a *ActionRecord) error {
	return r.db.Create(a).Error
}

func (r *JournalRepository) ListActions(sessionID uint) ([]ActionRecord, error) {
	var records []ActionRecord
	if err := r.db.Where("session_id = ?", sessionID).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
