// Package export renders the balance overview as downloadable files.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
	"github.com/tealeg/xlsx"
)

// overviewColumns is the column order shared by both file formats.
var overviewColumns = []string{
	"code",
	"name",
	"kind",
	"loaded_cage_total",
	"unloaded_cage_total",
	"cage_balance",
	"loaded_plate_total",
	"unloaded_plate_total",
	"plate_balance",
}

// WriteOverviewXLSX writes the overview rows as a single-sheet workbook.
func WriteOverviewXLSX(w io.Writer, rows []domain.OverviewRow) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Overview")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, column := range overviewColumns {
		headerRow.AddCell().Value = column
	}

	for _, row := range rows {
		sheetRow := sheet.AddRow()
		sheetRow.AddCell().Value = row.Code
		sheetRow.AddCell().Value = row.Name
		sheetRow.AddCell().Value = string(row.Kind)
		sheetRow.AddCell().SetInt(row.LoadedCageTotal)
		sheetRow.AddCell().SetInt(row.UnloadedCageTotal)
		sheetRow.AddCell().SetInt(row.CageBalance)
		sheetRow.AddCell().SetInt(row.LoadedPlateTotal)
		sheetRow.AddCell().SetInt(row.UnloadedPlateTotal)
		sheetRow.AddCell().SetInt(row.PlateBalance)
	}

	return file.Write(w)
}

// WriteOverviewCSV writes the overview rows as CSV with a header row.
func WriteOverviewCSV(w io.Writer, rows []domain.OverviewRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(overviewColumns); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Code,
			row.Name,
			string(row.Kind),
			strconv.Itoa(row.LoadedCageTotal),
			strconv.Itoa(row.UnloadedCageTotal),
			strconv.Itoa(row.CageBalance),
			strconv.Itoa(row.LoadedPlateTotal),
			strconv.Itoa(row.UnloadedPlateTotal),
			strconv.Itoa(row.PlateBalance),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
