package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads the three record tables from sheets of the same name
// in one workbook. A missing sheet yields an empty table for that
// kind.
func LoadXLSX(path string, activationSheet, decaySheet, limitsSheet string) (Tables, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("loader: open workbook: %w", err)
	}
	defer f.Close()

	var t Tables
	if rows, ok := readSheet(f, activationSheet); ok {
		t.Activation, t.ActivationReport = activationRecordsFromRows(rows)
	}
	if rows, ok := readSheet(f, decaySheet); ok {
		t.Decay, t.DecayReport = decayRecordsFromRows(rows)
	}
	if rows, ok := readSheet(f, limitsSheet); ok {
		t.Limits, t.LimitsReport = limitRecordsFromRows(rows)
	}
	return t, nil
}

func readSheet(f *excelize.File, name string) ([][]string, bool) {
	if name == "" {
		return nil, false
	}
	rows, err := f.GetRows(name)
	if err != nil || len(rows) < 2 {
		return nil, false
	}
	return rows, true
}
