package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fust64/fust_beheer_app/internal/apperrors"
	"github.com/fust64/fust_beheer_app/internal/core/domain"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/dto"
)

// csvHeaders lists the required columns of an import file, in no particular
// order. The count columns are optional per row and default to 0 when empty.
var csvHeaders = []string{
	"partner_code",
	"event_date",
	"kind",
	"loaded_cage",
	"loaded_plate",
	"unloaded_cage",
	"unloaded_plate",
}

type csvImportService struct {
	mutationSvc portssvc.MutationSvcFacade
}

// NewCSVImportService creates the bulk import service. Each row goes through
// the same partner-resolution and append path as manual entry.
func NewCSVImportService(mutationSvc portssvc.MutationSvcFacade) portssvc.CSVImportSvcFacade {
	return &csvImportService{mutationSvc: mutationSvc}
}

func (s *csvImportService) ImportCSV(ctx context.Context, r io.Reader) (*dto.CSVImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: csv file is empty", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("%w: malformed csv header: %v", apperrors.ErrValidation, err)
	}

	columns, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	summary := &dto.CSVImportSummary{Errors: []dto.CSVRowError{}}

	// Row numbers are 1-based over the file, counting the header as row 1.
	rowNumber := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNumber++
		if err != nil {
			// A lexically broken row fails alone; the reader resumes at the
			// next line.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rowNumber = parseErr.Line
				summary.TotalRows++
				summary.AddError(rowNumber, parseErr.Err.Error())
				continue
			}
			return nil, fmt.Errorf("%w: failed to read csv: %v", apperrors.ErrValidation, err)
		}

		if isBlankRow(record) {
			continue
		}
		summary.TotalRows++

		if len(record) != len(header) {
			summary.AddError(rowNumber, "column count mismatch")
			continue
		}

		req, reason := parseCSVRow(record, columns)
		if reason != "" {
			summary.AddError(rowNumber, reason)
			continue
		}

		// Row failures are collected, never propagated: rows are independent
		// and a bad row must not halt the ones after it.
		if _, err := s.mutationSvc.CreateMutation(ctx, req); err != nil {
			summary.AddError(rowNumber, rowErrorReason(err))
			continue
		}
		summary.Succeeded++
	}

	return summary, nil
}

// headerIndex validates the header row and maps column names to positions.
func headerIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range csvHeaders {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	return columns, nil
}

func isBlankRow(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func parseCSVRow(record []string, columns map[string]int) (dto.CreateMutationRequest, string) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var req dto.CreateMutationRequest

	req.PartnerCode = field("partner_code")
	if req.PartnerCode == "" {
		return req, "partner_code is required"
	}

	req.EventDate = field("event_date")
	if req.EventDate == "" {
		return req, "event_date is required"
	}
	if _, err := time.Parse(domain.EventDateFormat, req.EventDate); err != nil {
		return req, "event_date must have format YYYY-MM-DD"
	}

	req.Kind = strings.ToLower(field("kind"))
	if !domain.PartnerKind(req.Kind).IsValid() {
		return req, "kind must be customer or supplier"
	}

	counts := []struct {
		name string
		dst  *int
	}{
		{"loaded_cage", &req.LoadedCage},
		{"loaded_plate", &req.LoadedPlate},
		{"unloaded_cage", &req.UnloadedCage},
		{"unloaded_plate", &req.UnloadedPlate},
	}
	for _, c := range counts {
		raw := field(c.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, c.name + " must be a whole number"
		}
		if n < 0 {
			return req, c.name + " must not be negative"
		}
		*c.dst = n
	}

	return req, ""
}

// rowErrorReason turns a create error into a per-row reason. Validation
// failures carry their field-specific message; system failures stay generic so
// store internals never leak into the report.
func rowErrorReason(err error) string {
	if errors.Is(err, apperrors.ErrValidation) {
		return err.Error()
	}
	return "failed to store row"
}
