package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProjectStatus is the award/implementation stage of a project.
type ProjectStatus string

const (
	ProjectUnderImplementation  ProjectStatus = "UNDER_IMPLEMENTATION"
	ProjectAwardedButNotStarted ProjectStatus = "AWARDED_BUT_NOT_STARTED"
	ProjectBalanceForAward      ProjectStatus = "BALANCE_FOR_AWARD"
	ProjectCompleted            ProjectStatus = "COMPLETED"
)

// projectStatusByWire maps every accepted wire string to its canonical value.
var projectStatusByWire = map[string]ProjectStatus{
	"UNDER_IMPLEMENTATION":    ProjectUnderImplementation,
	"Under Implementation":    ProjectUnderImplementation,
	"AWARDED_BUT_NOT_STARTED": ProjectAwardedButNotStarted,
	"Awarded But Not Started": ProjectAwardedButNotStarted,
	"BALANCE_FOR_AWARD":       ProjectBalanceForAward,
	"Balance For Award":       ProjectBalanceForAward,
	"COMPLETED":               ProjectCompleted,
	"Completed":               ProjectCompleted,
}

// ParseProjectStatus resolves an enum name or its alias phrase.
// Surrounding whitespace is ignored; anything else must match exactly.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	if st, ok := projectStatusByWire[strings.TrimSpace(s)]; ok {
		return st, nil
	}
	return "", &ValidationError{
		Field:   "status",
		Message: fmt.Sprintf("invalid value %q (must be one of UNDER_IMPLEMENTATION, AWARDED_BUT_NOT_STARTED, BALANCE_FOR_AWARD, COMPLETED or their aliases)", s),
	}
}

// String returns the canonical enum name.
func (s ProjectStatus) String() string { return string(s) }

// UnmarshalJSON accepts the enum name or the alias phrase.
func (s *ProjectStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return &ValidationError{Field: "status", Message: "must be a string"}
	}
	st, err := ParseProjectStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// HighwayStatus is the lifecycle state of a highway.
type HighwayStatus string

const (
	HighwayPlanning     HighwayStatus = "PLANNING"
	HighwayConstruction HighwayStatus = "CONSTRUCTION"
	HighwayCompleted    HighwayStatus = "COMPLETED"
	HighwayMaintenance  HighwayStatus = "MAINTENANCE"
)

// ParseHighwayStatus validates a highway status name.
func ParseHighwayStatus(s string) (HighwayStatus, error) {
	switch st := HighwayStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case HighwayPlanning, HighwayConstruction, HighwayCompleted, HighwayMaintenance:
		return st, nil
	}
	return "", &ValidationError{
		Field:   "status",
		Message: fmt.Sprintf("invalid value %q (must be PLANNING, CONSTRUCTION, COMPLETED or MAINTENANCE)", s),
	}
}
