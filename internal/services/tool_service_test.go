package services

import (
	"testing"

	"github.com/sentineldesk/backend/internal/models"
)

func TestMostUsedTool(t *testing.T) {
	tools := []models.Tool{
		{Name: "Volatility", UsageCount: 17},
		{Name: "Wireshark", UsageCount: 42},
		{Name: "YARA", UsageCount: 29},
	}

	most := MostUsedTool(tools)
	if most == nil || most.Name != "Wireshark" {
		t.Errorf("Expected Wireshark, got %v", most)
	}
}

func TestMostUsedToolTieBreaksOnInputOrder(t *testing.T) {
	tools := []models.Tool{
		{Name: "Wireshark", UsageCount: 42},
		{Name: "YARA", UsageCount: 42},
	}

	most := MostUsedTool(tools)
	if most == nil || most.Name != "Wireshark" {
		t.Errorf("Expected first-encountered tool on tie, got %v", most)
	}
}

func TestMostUsedToolEmpty(t *testing.T) {
	if most := MostUsedTool(nil); most != nil {
		t.Errorf("Expected nil for empty catalog, got %v", most)
	}
}

func TestDistinctCategoryCount(t *testing.T) {
	tools := []models.Tool{
		{Name: "Wireshark", Category: "Network Analysis"},
		{Name: "tcpdump", Category: "Network Analysis"},
		{Name: "Volatility", Category: "Forensics"},
		{Name: "YARA", Category: "Malware Analysis"},
		{Name: "helper-script", Category: ""},
	}

	if got := DistinctCategoryCount(tools); got != 3 {
		t.Errorf("DistinctCategoryCount = %d, want 3", got)
	}
}

func TestDistinctCategoryCountEmpty(t *testing.T) {
	if got := DistinctCategoryCount(nil); got != 0 {
		t.Errorf("DistinctCategoryCount(nil) = %d, want 0", got)
	}
}
