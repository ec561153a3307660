// Package store persists comparison runs under a data directory, one
// subdirectory per run holding metadata.json and samples.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/equisdel/odelab/internal/compare"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Problem   string             `json:"problem"`
	Timestamp time.Time          `json:"timestamp"`
	X0        float64            `json:"x0"`
	Y0        float64            `json:"y0"`
	H         float64            `json:"h"`
	XF        float64            `json:"xf"`
	Steps     int                `json:"steps"`
	Methods   []string           `json:"methods"`
	Errors    map[string]float64 `json:"errors,omitempty"`
}

// Samples is the tabular form of a saved run: the shared x column plus
// one named y series per method (and "exact" when a reference exists).
type Samples struct {
	Xs     []float64
	Series []Series
}

type Series struct {
	Name string
	Ys   []float64
}

// Save writes one run to disk and returns its id. xf is the requested
// final x, which the truncating grid may not reach.
func (s *Store) Save(problem string, xf float64, rep *compare.Report) (string, error) {
	runID := fmt.Sprintf("%s_%d", problem, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Problem:   problem,
		Timestamp: time.Now(),
		X0:        rep.Grid.X0,
		Y0:        rep.Grid.Y0,
		H:         rep.Grid.H,
		XF:        xf,
		Steps:     rep.Grid.Steps,
		Methods:   make([]string, 0, len(rep.Results)),
	}
	if rep.HasReference {
		meta.Errors = make(map[string]float64, len(rep.Results))
	}
	for _, res := range rep.Results {
		meta.Methods = append(meta.Methods, res.Method)
		if rep.HasReference {
			meta.Errors[res.Method] = res.AbsError
		}
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"x"}
	for _, res := range rep.Results {
		header = append(header, res.Method)
	}
	if rep.HasReference {
		header = append(header, "exact")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := 0; i < rep.Grid.Steps+1; i++ {
		row := []string{formatFloat(rep.Grid.X0 + float64(i)*rep.Grid.H)}
		for _, res := range rep.Results {
			row = append(row, formatFloat(res.Trajectory.Ys[i]))
		}
		if rep.HasReference {
			row = append(row, formatFloat(rep.Reference.Ys[i]))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadSamples reads samples.csv back into columnar form.
func (s *Store) LoadSamples(runID string) (*Samples, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, fmt.Errorf("load samples for %s: %w", runID, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 || len(records[0]) < 2 {
		return nil, fmt.Errorf("malformed samples for %s", runID)
	}

	header := records[0]
	samples := &Samples{Series: make([]Series, len(header)-1)}
	for i, name := range header[1:] {
		samples.Series[i].Name = name
	}

	for _, row := range records[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("malformed samples for %s", runID)
		}
		x, err := parseFloat(row[0])
		if err != nil {
			return nil, err
		}
		samples.Xs = append(samples.Xs, x)
		for i, cell := range row[1:] {
			y, err := parseFloat(cell)
			if err != nil {
				return nil, err
			}
			samples.Series[i].Ys = append(samples.Series[i].Ys, y)
		}
	}

	return samples, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), err
	}
	return v, nil
}
