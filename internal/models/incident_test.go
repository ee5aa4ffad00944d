package models

import (
	"testing"
)

func TestIncidentSeverityIsValid(t *testing.T) {
	valid := []IncidentSeverity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("Expected %q to be valid", s)
		}
	}

	invalid := []IncidentSeverity{"", "low", "Catastrophic", "CRITICAL"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}

func TestIncidentStatusIsValid(t *testing.T) {
	valid := []IncidentStatus{StatusOpen, StatusInvestigating, StatusContained, StatusResolved, StatusClosed}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("Expected %q to be valid", s)
		}
	}

	invalid := []IncidentStatus{"", "open", "Archived", "RESOLVED"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}
