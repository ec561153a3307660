package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// ExportData is the flattened JSON form of a saved run.
type ExportData struct {
	ID      string               `json:"id"`
	Problem string               `json:"problem"`
	X0      float64              `json:"x0"`
	Y0      float64              `json:"y0"`
	H       float64              `json:"h"`
	XF      float64              `json:"xf"`
	Steps   int                  `json:"steps"`
	Xs      []float64            `json:"xs"`
	Series  map[string][]float64 `json:"series"`
	Errors  map[string]float64   `json:"errors,omitempty"`
}

func buildExport(meta *RunMetadata, samples *Samples) ExportData {
	data := ExportData{
		ID:      meta.ID,
		Problem: meta.Problem,
		X0:      meta.X0,
		Y0:      meta.Y0,
		H:       meta.H,
		XF:      meta.XF,
		Steps:   meta.Steps,
		Xs:      samples.Xs,
		Series:  make(map[string][]float64, len(samples.Series)),
		Errors:  meta.Errors,
	}
	for _, series := range samples.Series {
		data.Series[series.Name] = series.Ys
	}
	return data
}

// ExportJSON writes a saved run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, samples *Samples) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExport(meta, samples))
}

// ExportJSONStdout is the stdout convenience used by the CLI.
func ExportJSONStdout(meta *RunMetadata, samples *Samples) error {
	return ExportJSON(os.Stdout, meta, samples)
}

// ExportCSV re-emits a saved run's samples as CSV.
func ExportCSV(w io.Writer, samples *Samples) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"x"}
	for _, series := range samples.Series {
		header = append(header, series.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range samples.Xs {
		row := []string{strconv.FormatFloat(samples.Xs[i], 'f', 6, 64)}
		for _, series := range samples.Series {
			row = append(row, strconv.FormatFloat(series.Ys[i], 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
