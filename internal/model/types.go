package model

type Category string

const (
	CategorySecurity Category = "security"
	CategoryGas      Category = "gas"
	CategoryStyle    Category = "style"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityOrder = map[Severity]int{
	SeverityInfo:     1,
	SeverityLow:      2,
	SeverityMedium:   3,
	SeverityHigh:     4,
	SeverityCritical: 5,
}

// Severities lists all severities in ascending order.
func Severities() []Severity {
	return []Severity{SeverityInfo, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// ParseSeverity maps a string to a Severity; unknown values map to info so
// that a malformed threshold never filters anything out.
func ParseSeverity(s string) Severity {
	switch s {
	case string(SeverityCritical):
		return SeverityCritical
	case string(SeverityHigh):
		return SeverityHigh
	case string(SeverityMedium):
		return SeverityMedium
	case string(SeverityLow):
		return SeverityLow
	default:
		return SeverityInfo
	}
}

func SeverityGTE(a, b Severity) bool {
	return severityOrder[a] >= severityOrder[b]
}

type RuleMeta struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	SupportsFix bool     `json:"supportsFix"`
	References  []string `json:"references,omitempty"`
}

// Finding is one rule violation. Line and Column are 1-based; zero means
// location unknown.
type Finding struct {
	RuleID      string   `json:"ruleId"`
	Title       string   `json:"title"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	File        string   `json:"file"`
	Line        int      `json:"line,omitempty"`
	Column      int      `json:"column,omitempty"`
	Snippet     string   `json:"snippet,omitempty"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	AutoFixable bool     `json:"autoFixable"`
	References  []string `json:"references,omitempty"`
	Fingerprint string   `json:"fingerprint,omitempty"`
}

// Stats is the severity histogram over an aggregated result.
type Stats struct {
	TotalIssues int              `json:"totalIssues"`
	BySeverity  map[Severity]int `json:"bySeverity"`
	Security    int              `json:"security"`
	Gas         int              `json:"gas"`
	Style       int              `json:"style"`
}

// AnalysisResult holds per-category findings plus derived statistics.
// Recompute via engine.Aggregate whenever the lists change.
type AnalysisResult struct {
	Security []Finding `json:"security"`
	Gas      []Finding `json:"gas"`
	Style    []Finding `json:"style"`
	Issues   []Finding `json:"issues"`
	Stats    Stats     `json:"stats"`
}
