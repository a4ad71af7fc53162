package tips

import (
	"encoding/csv"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Fallback is returned as the only tip when a condition is not in the table.
const Fallback = "No specific tips available for your condition yet."

// Table maps a normalized condition name to its precautions. Read-only after
// load.
type Table struct {
	precautions map[string][]string
}

// Load reads the precautions CSV (condition in the first column, precautions
// in the rest, first row is a header). A missing or unreadable file degrades
// to an empty table with a warning, never a startup failure.
func Load(path string, log *zap.SugaredLogger) *Table {
	t := &Table{precautions: make(map[string][]string)}

	f, err := os.Open(path)
	if err != nil {
		log.Warnf("tips: %s not available, no tips will be served: %v", path, err)
		return t
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		log.Warnf("tips: failed to parse %s, no tips will be served: %v", path, err)
		return t
	}

	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		condition := strings.ToLower(strings.TrimSpace(row[0]))
		if condition == "" {
			continue
		}
		precautions := make([]string, 0, len(row)-1)
		for _, cell := range row[1:] {
			if cell = strings.TrimSpace(cell); cell != "" {
				precautions = append(precautions, cell)
			}
		}
		t.precautions[condition] = precautions
	}
	log.Infof("tips: loaded %d conditions from %s", len(t.precautions), path)
	return t
}

// Lookup is case-insensitive. An unrecognized condition yields the fallback;
// a recognized condition with no precautions yields an empty slice. The
// returned slice is a copy, safe for callers to hold.
func (t *Table) Lookup(condition string) []string {
	precautions, ok := t.precautions[strings.ToLower(strings.TrimSpace(condition))]
	if !ok {
		return []string{Fallback}
	}
	return append(make([]string, 0, len(precautions)), precautions...)
}

// Len reports how many conditions are loaded.
func (t *Table) Len() int {
	return len(t.precautions)
}
