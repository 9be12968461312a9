package domain

import "time"

// Severity is the rated severity of a finding.
type Severity string

const (
	SeverityCritical      Severity = "critical"
	SeverityHigh          Severity = "high"
	SeverityMedium        Severity = "medium"
	SeverityLow           Severity = "low"
	SeverityInformational Severity = "informational"
)

// AllSeverities returns every severity in rank order, critical first.
func AllSeverities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInformational}
}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInformational:
		return true
	default:
		return false
	}
}

// FindingStatus is the workflow state of a finding.
type FindingStatus string

const (
	FindingOpen       FindingStatus = "open"
	FindingInProgress FindingStatus = "in_progress"
	FindingClosed     FindingStatus = "closed"
	FindingReopened   FindingStatus = "reopened"
	FindingDuplicate  FindingStatus = "duplicate"
	FindingDeferred   FindingStatus = "deferred"
)

func AllFindingStatuses() []FindingStatus {
	return []FindingStatus{
		FindingOpen, FindingInProgress, FindingClosed,
		FindingReopened, FindingDuplicate, FindingDeferred,
	}
}

// SourceType identifies where a finding originated.
type SourceType string

const (
	SourceSecurityAssessment SourceType = "security_assessment"
	SourceVulnerabilityScan  SourceType = "vulnerability_scan"
	SourcePenetrationTest    SourceType = "penetration_test"
	SourceAudit              SourceType = "audit"
	SourceManual             SourceType = "manual"
)

func AllSourceTypes() []SourceType {
	return []SourceType{
		SourceSecurityAssessment, SourceVulnerabilityScan,
		SourcePenetrationTest, SourceAudit, SourceManual,
	}
}

type Finding struct {
	ID             string
	Title          string
	Description    string
	Severity       Severity
	Status         FindingStatus
	Category       string
	SourceType     SourceType
	SourceDetails  string
	Tags           []string
	CreatedDate    time.Time
	AssessmentID   string
	PromotedToRisk bool
	RiskID         string
}

// Open reports whether the finding still needs attention. Closed and
// duplicate findings are settled; everything else counts as open.
func (f Finding) Open() bool {
	switch f.Status {
	case FindingClosed, FindingDuplicate:
		return false
	default:
		return true
	}
}

// FindingFilters narrows GetFindings output. Zero values mean "no filter";
// Tags is any-match.
type FindingFilters struct {
	SourceType SourceType
	Severity   Severity
	Status     FindingStatus
	Tags       []string
}

// FindingMetrics is a zero-filled tally over a client's findings: every
// severity, status and source key is present even when its count is 0.
type FindingMetrics struct {
	Total          int
	BySeverity     map[Severity]int
	ByStatus       map[FindingStatus]int
	BySource       map[SourceType]int
	PromotedToRisk int
}
