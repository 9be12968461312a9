package scoring

import "strings"

// The four canonical control categories every report rolls up to.
const (
	CategoryAccessControl           = "Access Control"
	CategoryDataProtection          = "Data Protection"
	CategoryVulnerabilityManagement = "Vulnerability Management"
	CategoryIncidentResponse        = "Incident Response"
)

// CanonicalCategories returns the fixed control taxonomy in report order.
func CanonicalCategories() []string {
	return []string{
		CategoryAccessControl,
		CategoryDataProtection,
		CategoryVulnerabilityManagement,
		CategoryIncidentResponse,
	}
}

// categoryAliases maps free-text categories, lowercased, onto the canonical
// taxonomy. This is a best-effort heuristic, not a closed taxonomy.
var categoryAliases = map[string]string{
	"access control":           CategoryAccessControl,
	"access":                   CategoryAccessControl,
	"iam":                      CategoryAccessControl,
	"identity":                 CategoryAccessControl,
	"identity and access":      CategoryAccessControl,
	"authentication":           CategoryAccessControl,
	"authorization":            CategoryAccessControl,
	"privileged access":        CategoryAccessControl,
	"data protection":          CategoryDataProtection,
	"data security":            CategoryDataProtection,
	"encryption":               CategoryDataProtection,
	"data privacy":             CategoryDataProtection,
	"privacy":                  CategoryDataProtection,
	"data loss prevention":     CategoryDataProtection,
	"vulnerability management": CategoryVulnerabilityManagement,
	"vulnerability":            CategoryVulnerabilityManagement,
	"vulnerabilities":          CategoryVulnerabilityManagement,
	"patching":                 CategoryVulnerabilityManagement,
	"patch management":         CategoryVulnerabilityManagement,
	"configuration":            CategoryVulnerabilityManagement,
	"misconfiguration":         CategoryVulnerabilityManagement,
	"incident response":        CategoryIncidentResponse,
	"incident management":      CategoryIncidentResponse,
	"detection":                CategoryIncidentResponse,
	"monitoring":               CategoryIncidentResponse,
	"logging":                  CategoryIncidentResponse,
}

// CanonicalCategory maps a raw category string to a canonical control
// category. Unmapped categories pass through unchanged and become their own
// bucket; ok is false so callers can flag them.
func CanonicalCategory(raw string) (category string, ok bool) {
	if mapped, found := categoryAliases[strings.ToLower(strings.TrimSpace(raw))]; found {
		return mapped, true
	}
	return raw, false
}
