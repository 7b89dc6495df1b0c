package report

import (
	"fmt"

	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the invitation list.
const SheetName = "Invitees"

var xlsxHeader = []any{"user_id", "name", "latitude", "longitude"}

// WriteXLSX saves the invitees to an Excel workbook at path, one row per customer
// below a header row.
func WriteXLSX(path string, invitees []models.Customer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for idx, c := range invitees {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", idx+2, err)
		}
		row := []any{c.UserID, c.Name, c.Latitude, c.Longitude}
		if err = f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write invitee %d: %w", c.UserID, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
