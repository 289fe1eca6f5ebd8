package certificates

import "time"

// Certificate represents an uploaded compliance certificate and the fields
// parsed out of it.
type Certificate struct {
	ID               string
	FileName         string
	MimeType         string
	SizeBytes        int64
	StorageProvider  string
	StorageKey       string
	ExtractedTextKey string
	OrganizationName string
	CaseID           string
	TaxID            string
	SocialURL        string
	CreatedAt        time.Time
}
