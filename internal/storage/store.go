package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kylecz/blshoot/internal/shoot"
)

// Store persists solver runs under a base directory, one subdirectory per
// run holding metadata.json and profile.csv.
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
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Mach        float64   `json:"mach"`
	Temperature float64   `json:"temperature"`
	EtaMax      float64   `json:"eta_max"`
	N           int       `json:"n"`
	Alpha       float64   `json:"alpha"`
	Beta        float64   `json:"beta"`
	Iterations  int       `json:"iterations"`
	Status      string    `json:"status"`
	ErrProfile  float64   `json:"err_profile"`
	ErrBC       float64   `json:"err_bc"`
}

func (s *Store) Save(p shoot.Params, result *shoot.Result) (string, error) {
	runID := fmt.Sprintf("m%.1f_%d", p.Mach, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Mach:        p.Mach,
		Temperature: p.Temperature,
		EtaMax:      p.EtaMax,
		N:           result.N,
		Alpha:       result.Alpha,
		Beta:        result.Beta,
		Iterations:  result.Iterations,
		Status:      result.Status.String(),
		ErrProfile:  result.ErrProfile,
		ErrBC:       result.ErrBC,
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

	csvFile, err := os.Create(filepath.Join(runDir, "profile.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()
	if err := WriteProfileCSV(w, result); err != nil {
		return "", err
	}

	return runID, nil
}

// WriteProfileCSV writes the profile arrays as eta,y,u,temp rows.
func WriteProfileCSV(w *csv.Writer, result *shoot.Result) error {
	if err := w.Write([]string{"eta", "y", "u", "temp"}); err != nil {
		return err
	}
	for i := range result.Eta {
		row := []string{
			strconv.FormatFloat(result.Eta[i], 'f', 6, 64),
			strconv.FormatFloat(result.Y[i], 'f', 6, 64),
			strconv.FormatFloat(result.U[i], 'f', 6, 64),
			strconv.FormatFloat(result.T[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
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
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadProfile reads the stored profile arrays back.
func (s *Store) LoadProfile(runID string) (eta, y, u, temp []float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "profile.csv"))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, nil, nil, fmt.Errorf("storage: run %s has no profile rows", runID)
	}

	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		eta = append(eta, vals[0])
		y = append(y, vals[1])
		u = append(u, vals[2])
		temp = append(temp, vals[3])
	}
	return eta, y, u, temp, nil
}
