package storage

import (
	"encoding/json"
	"io"

	"github.com/kylecz/blshoot/internal/shoot"
)

// ExportData is the JSON shape consumed by downstream plotting tools.
type ExportData struct {
	ID          string    `json:"id,omitempty"`
	Mach        float64   `json:"mach"`
	Temperature float64   `json:"temperature"`
	N           int       `json:"n"`
	Status      string    `json:"status"`
	Iterations  int       `json:"iterations"`
	ErrProfile  float64   `json:"err_profile"`
	ErrBC       float64   `json:"err_bc"`
	Eta         []float64 `json:"eta"`
	Y           []float64 `json:"y"`
	U           []float64 `json:"u"`
	T           []float64 `json:"temp"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(w io.Writer, id string, mach, temperature float64, result *shoot.Result) error {
	data := ExportData{
		ID:          id,
		Mach:        mach,
		Temperature: temperature,
		N:           result.N,
		Status:      result.Status.String(),
		Iterations:  result.Iterations,
		ErrProfile:  result.ErrProfile,
		ErrBC:       result.ErrBC,
		Eta:         result.Eta,
		Y:           result.Y,
		U:           result.U,
		T:           result.T,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportRunJSON writes a previously stored run as indented JSON.
func ExportRunJSON(w io.Writer, meta *RunMetadata, eta, y, u, temp []float64) error {
	data := ExportData{
		ID:          meta.ID,
		Mach:        meta.Mach,
		Temperature: meta.Temperature,
		N:           meta.N,
		Status:      meta.Status,
		Iterations:  meta.Iterations,
		ErrProfile:  meta.ErrProfile,
		ErrBC:       meta.ErrBC,
		Eta:         eta,
		Y:           y,
		U:           u,
		T:           temp,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
