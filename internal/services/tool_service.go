package services

import (
	"github.com/sentineldesk/backend/internal/models"
	"gorm.io/gorm"
)

type ToolService struct {
	db *gorm.DB
}

func NewToolService(db *gorm.DB) *ToolService {
	return &ToolService{db: db}
}

// List returns the tool catalog most-used first.
func (s *ToolService) List() ([]models.Tool, error) {
	tools := []models.Tool{}
	if err := s.db.Order("usage_count desc").Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}

func (s *ToolService) Create(tool *models.Tool) error {
	return s.db.Create(tool).Error
}

// ToolSummary is a recomputed-per-call snapshot of catalog usage; nothing is
// cached or persisted.
type ToolSummary struct {
	MostUsed           *models.Tool `json:"mostUsed"`
	DistinctCategories int          `json:"distinctCategories"`
}

// MostUsedTool returns the tool with the highest usage count. Ties go to the
// tool encountered first in input order.
func MostUsedTool(tools []models.Tool) *models.Tool {
	var most *models.Tool
	for i := range tools {
		if most == nil || tools[i].UsageCount > most.UsageCount {
			most = &tools[i]
		}
	}
	return most
}

// DistinctCategoryCount counts the distinct non-empty categories present.
func DistinctCategoryCount(tools []models.Tool) int {
	seen := map[string]struct{}{}
	for _, tool := range tools {
		if tool.Category == "" {
			continue
		}
		seen[tool.Category] = struct{}{}
	}
	return len(seen)
}

func (s *ToolService) Summary() (ToolSummary, error) {
	tools, err := s.List()
	if err != nil {
		return ToolSummary{}, err
	}
	return ToolSummary{
		MostUsed:           MostUsedTool(tools),
		DistinctCategories: DistinctCategoryCount(tools),
	}, nil
}
