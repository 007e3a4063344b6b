package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/nbodyviz/internal/series"
)

const (
	metadataFile = "metadata.json"
	streamFile   = "stream.txt"
)

// ErrRunNotFound indicates an unknown run id.
var ErrRunNotFound = errors.New("storage: run not found")

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Store archives decoded streams under a base directory, one directory per
// run, so they can be replayed without the producing simulation.
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
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Bodies    int       `json:"bodies"`
	Frames    int       `json:"frames"`
	Source    string    `json:"source,omitempty"`
}

// Save writes the series and its metadata and returns the new run id.
func (s *Store) Save(name, source string, st *series.Store) (string, error) {
	name = unsafeName.ReplaceAllString(name, "_")
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%s", name, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Timestamp: time.Now(),
		Bodies:    st.BodyCount(),
		Frames:    st.FrameCount(),
		Source:    source,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, streamFile))
	if err != nil {
		return "", err
	}
	if err := series.Encode(f, st); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns every readable run, newest first.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, filepath.Base(runID), metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries decodes the archived stream of a run.
func (s *Store) LoadSeries(runID string) (*series.Store, error) {
	path := filepath.Join(s.baseDir, filepath.Base(runID), streamFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
	}
	return series.DecodeFile(path)
}
