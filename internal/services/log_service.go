package services

import (
	"time"

	"github.com/sentineldesk/backend/internal/models"
	"gorm.io/gorm"
)

const defaultLogLimit = 100

type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

// LogFilter narrows system log listings. "all" means no filter, same as the
// incident filters.
type LogFilter struct {
	Severity string
	Source   string
	Limit    int
}

// List returns system logs newest event first.
func (s *LogService) List(filter LogFilter) ([]models.SystemLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}

	query := s.db.Model(&models.SystemLog{})

	if filter.Severity != "" && filter.Severity != "all" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if filter.Source != "" && filter.Source != "all" {
		query = query.Where("source = ?", filter.Source)
	}

	logs := []models.SystemLog{}
	if err := query.Order("event_time desc").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Create persists a log record, stamping event_time when the sender omits it.
func (s *LogService) Create(entry *models.SystemLog) error {
	if entry.EventTime.IsZero() {
		entry.EventTime = time.Now()
	}
	return s.db.Create(entry).Error
}
