package risk

// Status classifies the outcome of resolving a case identifier against the
// scored dataset. Exactly one status is produced per assessment.
type Status string

const (
	// StatusOK means the row was found with every model feature present.
	StatusOK Status = "ok"
	// StatusNoIdentifier means no case identifier could be extracted.
	StatusNoIdentifier Status = "error"
	// StatusUnknownCase means the identifier matched neither the scored
	// dataset nor the ranking index.
	StatusUnknownCase Status = "no_expediente"
	// StatusNotEligible means the identifier is in the ranking index but
	// not in the scored dataset.
	StatusNotEligible Status = "no_pyme"
	// StatusMissingFeatures means the row was found but lacks at least one
	// model feature column.
	StatusMissingFeatures Status = "missing_features"
)

const (
	msgNoIdentifier = "No se pudo extraer el N° de expediente del PDF."
	msgUnknownCase  = "Alerta: no existe expediente en la Super de Compañías"
	msgNotEligible  = "Su compañía no es PYME"
)

// tierNames maps the classifier output class to its user-facing tier.
var tierNames = map[int]string{0: "Bajo", 1: "Medio", 2: "Alto"}

// TierName returns the tier text for a class label, or "" if unknown.
func TierName(class int) string {
	return tierNames[class]
}

// Result is the outcome of one assessment. Tier fields (PredNum, PredText)
// are set only when Status is StatusOK; TotalScore is set whenever the
// resolved row carries a score_final value.
type Result struct {
	Status     Status
	PredNum    *int
	PredText   string
	Features   map[string]float64
	TotalScore *float64
	Message    string
}
