package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sentineldesk/backend/internal/logger"
	"github.com/sentineldesk/backend/internal/models"
	"gorm.io/gorm"
)

const (
	defaultIncidentLimit = 50
	dashboardWindow      = 25
	recentIncidentCount  = 6

	// Generated reference ids carry only 900 possible suffixes per year, so
	// collisions are expected under load. Bounded retry, then give up.
	maxReferenceAttempts = 5
)

type IncidentService struct {
	db *gorm.DB
}

func NewIncidentService(db *gorm.DB) *IncidentService {
	return &IncidentService{db: db}
}

// IncidentFilter narrows incident listings. The literal "all" is treated the
// same as an absent filter, matching the dashboard's filter dropdowns.
type IncidentFilter struct {
	Severity string
	Status   string
	Search   string
	Limit    int
}

// IncidentUpdate carries a partial update. Nil pointer fields and nil slices
// are left untouched; supplied slices replace the stored value wholesale.
type IncidentUpdate struct {
	Title       *string
	Type        *string
	Severity    *models.IncidentSeverity
	Status      *models.IncidentStatus
	Description *string
	Reporter    *string
	Assignee    *string
	ToolsUsed   []models.ToolUsage
	Evidence    []models.Evidence
	Timeline    []models.TimelineEvent
}

func (u IncidentUpdate) apply(incident *models.Incident) {
	if u.Title != nil {
		incident.Title = *u.Title
	}
	if u.Type != nil {
		incident.Type = *u.Type
	}
	if u.Severity != nil {
		incident.Severity = *u.Severity
	}
	if u.Status != nil {
		incident.Status = *u.Status
	}
	if u.Description != nil {
		incident.Description = *u.Description
	}
	if u.Reporter != nil {
		incident.Reporter = *u.Reporter
	}
	if u.Assignee != nil {
		if *u.Assignee == "" {
			incident.Assignee = nil
		} else {
			assignee := *u.Assignee
			incident.Assignee = &assignee
		}
	}
	if u.ToolsUsed != nil {
		incident.ToolsUsed = u.ToolsUsed
	}
	if u.Evidence != nil {
		incident.Evidence = u.Evidence
	}
	if u.Timeline != nil {
		incident.Timeline = u.Timeline
	}
}

// List returns incidents newest-first, honoring the optional filters.
func (s *IncidentService) List(filter IncidentFilter) ([]models.Incident, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultIncidentLimit
	}

	query := s.db.Model(&models.Incident{})

	if filter.Severity != "" && filter.Severity != "all" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR reference_id ILIKE ? OR reporter ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	incidents := []models.Incident{}
	if err := query.Order("created_at desc").Limit(limit).Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

// Get fetches a single incident by reference id.
func (s *IncidentService) Get(reference string) (models.Incident, error) {
	var incident models.Incident
	err := s.db.Where("reference_id = ?", reference).First(&incident).Error
	return incident, err
}

// applyCreationDefaults fills the fields the creation payload may omit:
// status Open and empty sub-record collections.
func applyCreationDefaults(incident *models.Incident) {
	if incident.Status == "" {
		incident.Status = models.StatusOpen
	}
	if incident.ToolsUsed == nil {
		incident.ToolsUsed = []models.ToolUsage{}
	}
	if incident.Evidence == nil {
		incident.Evidence = []models.Evidence{}
	}
	if incident.Timeline == nil {
		incident.Timeline = []models.TimelineEvent{}
	}
}

// Create persists a new incident. A client-supplied reference id is attempted
// once and a duplicate surfaces as the store's rejection; a server-generated
// id is retried on collision up to maxReferenceAttempts.
func (s *IncidentService) Create(incident *models.Incident) error {
	applyCreationDefaults(incident)

	if incident.ReferenceID != "" {
		return s.db.Create(incident).Error
	}

	var err error
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		incident.ReferenceID = models.GenerateReferenceID()
		err = s.db.Create(incident).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		logger.Warn("reference id collision, regenerating", map[string]interface{}{
			"reference_id": incident.ReferenceID,
			"attempt":      attempt,
		})
	}
	return fmt.Errorf("failed to allocate a unique reference id after %d attempts: %w",
		maxReferenceAttempts, err)
}

// Update merges the supplied fields into the stored incident. The reference
// id is immutable; updated_at is bumped by the save.
func (s *IncidentService) Update(reference string, update IncidentUpdate) (models.Incident, error) {
	incident, err := s.Get(reference)
	if err != nil {
		return models.Incident{}, err
	}

	update.apply(&incident)

	if err := s.db.Save(&incident).Error; err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}

// Delete removes an incident by reference id. Deleting a missing reference
// is not an error; the statement simply affects no rows.
func (s *IncidentService) Delete(reference string) error {
	return s.db.Where("reference_id = ?", reference).Delete(&models.Incident{}).Error
}

// DashboardMetrics is the point-in-time counter snapshot shown at the top of
// the dashboard, recomputed in full on every call.
type DashboardMetrics struct {
	TotalIncidents    int `json:"totalIncidents"`
	ActiveIncidents   int `json:"activeIncidents"`
	ResolvedToday     int `json:"resolvedToday"`
	CriticalIncidents int `json:"criticalIncidents"`
}

func computeDashboardMetrics(incidents []models.Incident, now time.Time) DashboardMetrics {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	metrics := DashboardMetrics{TotalIncidents: len(incidents)}
	for _, incident := range incidents {
		if incident.Status == models.StatusOpen || incident.Status == models.StatusInvestigating {
			metrics.ActiveIncidents++
		}
		if incident.Status == models.StatusResolved && !incident.UpdatedAt.Before(startOfDay) {
			metrics.ResolvedToday++
		}
		if incident.Severity == models.SeverityCritical {
			metrics.CriticalIncidents++
		}
	}
	return metrics
}

// Dashboard computes the metric counters over the 25 most recent incidents
// and returns them alongside the 6 newest.
func (s *IncidentService) Dashboard() (DashboardMetrics, []models.Incident, error) {
	incidents, err := s.List(IncidentFilter{Limit: dashboardWindow})
	if err != nil {
		return DashboardMetrics{}, nil, err
	}

	metrics := computeDashboardMetrics(incidents, time.Now())

	recent := incidents
	if len(recent) > recentIncidentCount {
		recent = recent[:recentIncidentCount]
	}
	return metrics, recent, nil
}
