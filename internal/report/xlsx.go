package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX exports r as a workbook with a summary sheet followed by one
// sheet per table, creating the parent directory if needed.
//
// Postcondition: On success the file at path holds every sheet of r.
func WriteXLSX(path string, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}
	summary := [][]any{
		{"dice_set", r.DiceSet},
		{"session", r.SessionID},
		{"form", string(r.Form)},
		{"rolls", r.Rolls},
		{"dice", r.Dice},
		{"jackpots", r.Jackpots},
		{"jackpot_rate", r.JackpotRate()},
	}
	if err := writeRows(f, SheetSummary, nil, summary); err != nil {
		return err
	}

	for _, s := range r.Sheets {
		if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", s.Name, err)
		}
		if err := writeRows(f, s.Name, s.Header, s.Rows); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]any) error {
	next := 1
	if header != nil {
		cells := make([]any, len(header))
		for i, h := range header {
			cells[i] = h
		}
		if err := setRow(f, sheet, next, cells); err != nil {
			return err
		}
		next++
	}
	for _, row := range rows {
		if err := setRow(f, sheet, next, row); err != nil {
			return err
		}
		next++
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
	}
	return nil
}
