package services

import (
	"context"
	"io"

	"github.com/fust64/fust_beheer_app/internal/dto"
)

// CSVImportSvc ingests a line-oriented CSV of exchange events. Rows are
// independent: a malformed row is collected as an error and never halts the
// rows after it.
type CSVImportSvc interface {
	// ImportCSV parses and persists the given CSV stream, returning a summary
	// of succeeded and failed rows (reported errors are capped).
	ImportCSV(ctx context.Context, r io.Reader) (*dto.CSVImportSummary, error)
}

// CSVImportSvcFacade combines all import-related service interfaces
type CSVImportSvcFacade interface {
	CSVImportSvc
}
