package recommend

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Table file base names looked up under the data directory, as .csv or .xlsx.
const (
	lengthsTable  = "lengths"
	ideasTable    = "ideas"
	problemsTable = "problems"
)

// Load reads the recommendation tables from dir. The lengths and ideas
// tables are required; the problems table is optional. Each table is a
// header row followed by key/value rows.
func Load(dir string) (*Tables, error) {
	t := &Tables{
		Lengths: make(map[string]string),
		Ideas:   make(map[string][]string),
	}

	lengthRows, err := readTable(dir, lengthsTable)
	if err != nil {
		return nil, err
	}
	for _, row := range lengthRows {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		t.Lengths[row[0]] = row[1]
	}

	ideaRows, err := readTable(dir, ideasTable)
	if err != nil {
		return nil, err
	}
	for _, row := range ideaRows {
		if len(row) < 2 || row[0] == "" || row[1] == "" {
			continue
		}
		t.Ideas[row[0]] = append(t.Ideas[row[0]], row[1])
	}

	problemRows, err := readTable(dir, problemsTable)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, err
	}
	for _, row := range problemRows {
		if len(row) < 3 || row[0] == "" {
			continue
		}
		t.Problems = append(t.Problems, ProblemRule{
			Keyword:            row[0],
			RecommendedProgram: row[1],
			TargetAudience:     row[2],
		})
	}

	return t, nil
}

// readTable locates <base>.csv or <base>.xlsx under dir and returns its data
// rows with the header row stripped.
func readTable(dir, base string) ([][]string, error) {
	csvPath := filepath.Join(dir, base+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		return readCSVRows(csvPath)
	}

	xlsxPath := filepath.Join(dir, base+".xlsx")
	if _, err := os.Stat(xlsxPath); err == nil {
		return readXLSXRows(xlsxPath)
	}

	return nil, &os.PathError{Op: "open", Path: csvPath, Err: os.ErrNotExist}
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return stripHeader(rows), nil
}

func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("reading Sheet1 of %s: %w", path, err)
	}
	return stripHeader(rows), nil
}

func stripHeader(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}
