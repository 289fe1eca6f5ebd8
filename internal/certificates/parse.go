package certificates

import (
	"regexp"
	"strings"
)

// Fields holds the identifying fields parsed from a certificate. Absent
// fields are empty strings; extraction is best-effort and never fails.
type Fields struct {
	OrganizationName string `json:"organizationName,omitempty"`
	CaseID           string `json:"caseId,omitempty"`
	TaxID            string `json:"taxId,omitempty"`
}

var (
	horizontalWS     = regexp.MustCompile(`[ \t]+`)
	trailingWS       = regexp.MustCompile(`\s+\n`)
	innerWS          = regexp.MustCompile(`\s+`)
	organizationRe   = regexp.MustCompile(`(?is)RAZ[ÓO]N\s+O\s+DENOMINACI[ÓO]N\s*(?:[:\-]\s*)?(.*?)\s*EXPEDIENTE\s*:`)
	caseIdentifierRe = regexp.MustCompile(`(?i)EXPEDIENTE\s*:\s*([0-9]+)`)
	taxIdentifierRe  = regexp.MustCompile(`(?i)RUC\s*:\s*([0-9]{10,13})`)
)

// Section headers the text extractor sometimes merges into the organization
// name field; a captured span equal to one of these is discarded.
var boilerplateHeaders = map[string]struct{}{
	"DATOS GENERALES DE LA COMPAÑÍA": {},
	"DATOS GENERALES DE LA COMPANIA": {},
	"DATOS GENERALES DE LA COMPAÑIA": {},
}

// Normalize collapses whitespace noise in raw extracted certificate text so
// the field patterns match reliably. It is idempotent.
func Normalize(raw string) string {
	t := strings.ReplaceAll(raw, "\r", " ")
	t = horizontalWS.ReplaceAllString(t, " ")
	t = trailingWS.ReplaceAllString(t, "\n")
	return t
}

// Parse extracts the organization name, case identifier and tax identifier
// from normalized certificate text. The three extractions are independent.
func Parse(text string) Fields {
	var f Fields

	if m := organizationRe.FindStringSubmatch(text); m != nil {
		// Trim label punctuation but keep periods: legal names like
		// "ACME S.A." end with one.
		name := innerWS.ReplaceAllString(m[1], " ")
		name = strings.Trim(name, " :-")
		if _, bad := boilerplateHeaders[strings.ToUpper(name)]; !bad {
			f.OrganizationName = name
		}
	}

	if m := caseIdentifierRe.FindStringSubmatch(text); m != nil {
		f.CaseID = m[1]
	}

	if m := taxIdentifierRe.FindStringSubmatch(text); m != nil {
		f.TaxID = m[1]
	}

	return f
}
