package dto

// MaxReportedCSVErrors caps how many row errors a CSV import summary carries.
const MaxReportedCSVErrors = 50

// CSVRowError identifies a single failed import row and why it failed.
type CSVRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// CSVImportSummary reports the outcome of a bulk CSV import. Failed counts
// every bad row even when Errors is capped.
type CSVImportSummary struct {
	TotalRows int           `json:"totalRows"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Errors    []CSVRowError `json:"errors"`
}

// AddError records a failed row, keeping at most MaxReportedCSVErrors entries.
func (s *CSVImportSummary) AddError(row int, reason string) {
	s.Failed++
	if len(s.Errors) < MaxReportedCSVErrors {
		s.Errors = append(s.Errors, CSVRowError{Row: row, Reason: reason})
	}
}
