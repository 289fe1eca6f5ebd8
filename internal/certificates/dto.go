package certificates

import "time"

// CertificateResponse is the outward-facing representation of a certificate.
type CertificateResponse struct {
	CertificateID    string    `json:"certificateId"`
	FileName         string    `json:"fileName"`
	SizeBytes        int64     `json:"sizeBytes"`
	OrganizationName string    `json:"organizationName,omitempty"`
	CaseID           string    `json:"caseId,omitempty"`
	TaxID            string    `json:"taxId,omitempty"`
	SocialURL        string    `json:"socialUrl,omitempty"`
	UploadedAt       time.Time `json:"uploadedAt"`
}

func toResponse(cert Certificate) CertificateResponse {
	return CertificateResponse{
		CertificateID:    cert.ID,
		FileName:         cert.FileName,
		SizeBytes:        cert.SizeBytes,
		OrganizationName: cert.OrganizationName,
		CaseID:           cert.CaseID,
		TaxID:            cert.TaxID,
		SocialURL:        cert.SocialURL,
		UploadedAt:       cert.CreatedAt,
	}
}
