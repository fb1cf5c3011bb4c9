package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/sortlab/internal/algo"
)

// Store persists headless runs: one directory per run holding
// metadata.json and the full step trace as trace.csv.
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
	Algorithm   string    `json:"algorithm"`
	Timestamp   time.Time `json:"timestamp"`
	N           int       `json:"n"`
	Seed        int64     `json:"seed"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
	Steps       int       `json:"steps"`
	ElapsedMs   float64   `json:"elapsed_ms"`
	Final       []int     `json:"final"`
}

// TraceRow is one recorded step, without the array snapshot.
type TraceRow struct {
	Comparisons int
	Swaps       int
	Compare     []int
	Swapped     []int
}

func (s *Store) Save(algorithm string, n int, seed int64, steps []algo.Step, elapsed time.Duration) (string, error) {
	if len(steps) == 0 {
		return "", fmt.Errorf("no steps to save")
	}
	runID := fmt.Sprintf("%s_%d", algorithm, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	last := steps[len(steps)-1]
	meta := RunMetadata{
		ID:          runID,
		Algorithm:   algorithm,
		Timestamp:   time.Now(),
		N:           n,
		Seed:        seed,
		Comparisons: last.Comparisons,
		Swaps:       last.Swaps,
		Steps:       len(steps),
		ElapsedMs:   float64(elapsed.Microseconds()) / 1000,
		Final:       last.Array,
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

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "comparisons", "swaps", "compare", "swapped"}); err != nil {
		return "", err
	}
	for i, step := range steps {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(step.Comparisons),
			strconv.Itoa(step.Swaps),
			joinIndexes(step.Compare),
			joinIndexes(step.Swapped),
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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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

func (s *Store) LoadTrace(runID string) ([]TraceRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
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
		return []TraceRow{}, nil
	}

	rows := make([]TraceRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}
		comparisons, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		swaps, err := strconv.Atoi(record[2])
		if err != nil {
			continue
		}
		rows = append(rows, TraceRow{
			Comparisons: comparisons,
			Swaps:       swaps,
			Compare:     splitIndexes(record[3]),
			Swapped:     splitIndexes(record[4]),
		})
	}
	return rows, nil
}

func joinIndexes(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, "|")
}

func splitIndexes(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	v := make([]int, 0, len(parts))
	for _, p := range parts {
		x, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		v = append(v, x)
	}
	return v
}
