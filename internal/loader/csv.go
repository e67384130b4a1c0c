package loader

import (
	"encoding/csv"
	"fmt"
	"io"
)

// LoadCSV reads the three record tables from plain CSV readers. Any of
// the three may be nil, yielding an empty table for that kind — the
// activation table being empty is only fatal once the records reach
// nucdata.Build, not here.
func LoadCSV(activation, decay, limits io.Reader) (Tables, error) {
	var t Tables
	if activation != nil {
		rows, err := readCSVRows(activation)
		if err != nil {
			return Tables{}, fmt.Errorf("loader: activation csv: %w", err)
		}
		t.Activation, t.ActivationReport = activationRecordsFromRows(rows)
	}
	if decay != nil {
		rows, err := readCSVRows(decay)
		if err != nil {
			return Tables{}, fmt.Errorf("loader: decay csv: %w", err)
		}
		t.Decay, t.DecayReport = decayRecordsFromRows(rows)
	}
	if limits != nil {
		rows, err := readCSVRows(limits)
		if err != nil {
			return Tables{}, fmt.Errorf("loader: limits csv: %w", err)
		}
		t.Limits, t.LimitsReport = limitRecordsFromRows(rows)
	}
	return t, nil
}

func readCSVRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}
