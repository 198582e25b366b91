package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/dualgrad/internal/diff"
	"github.com/san-kum/dualgrad/internal/study"
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
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	X         float64                `json:"x"`
	Degree    int                    `json:"degree"`
	Steps     int                    `json:"steps"`
	Methods   map[string]diff.Result `json:"methods"`
	ElapsedMS float64                `json:"elapsed_ms"`
}

// TracePoint is one row of a stored convergence trace.
type TracePoint struct {
	Step     int
	Value    float64
	Tangent  float64
	ValueErr float64
}

func (s *Store) Save(result *study.Result) (string, error) {
	runID := fmt.Sprintf("root%d_%d", result.Degree, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		X:         result.X,
		Degree:    result.Degree,
		Steps:     result.Steps,
		Methods:   result.Methods,
		ElapsedMS: float64(result.Elapsed.Microseconds()) / 1000,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "trace.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "value", "tangent", "value_err"}); err != nil {
		return "", err
	}
	for _, p := range result.Trace {
		row := []string{
			strconv.Itoa(p.Step),
			strconv.FormatFloat(p.Value, 'g', 17, 64),
			strconv.FormatFloat(p.Tangent, 'g', 17, 64),
			strconv.FormatFloat(p.ValueErr, 'g', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]TracePoint, error) {
	csvPath := filepath.Join(s.baseDir, runID, "trace.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []TracePoint{}, nil
	}

	points := make([]TracePoint, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}

		step, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		tangent, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		valueErr, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}

		points = append(points, TracePoint{
			Step:     step,
			Value:    value,
			Tangent:  tangent,
			ValueErr: valueErr,
		})
	}

	return points, nil
}
