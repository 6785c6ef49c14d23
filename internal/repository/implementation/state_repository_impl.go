package implementation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/contract"
)

// fileStateRepository keeps the State in a single JSON file. The mutex
// serializes the whole load-mutate-save cycle, which removes the
// lost-update race of a naive read-modify-write; writes go through a temp
// file plus rename so a crash mid-write cannot truncate the state.
type fileStateRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileStateRepository(path string) contract.IStateRepository {
	return &fileStateRepository{path: path}
}

func (r *fileStateRepository) Load() (*entity.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *fileStateRepository) Update(mutate func(*entity.State) error) (*entity.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.load()
	if err != nil {
		return nil, err
	}
	if err := mutate(state); err != nil {
		return nil, err
	}
	if err := r.save(state); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *fileStateRepository) load() (*entity.State, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entity.NewState(), nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state entity.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	if state.Sessions == nil {
		state.Sessions = make(map[string]*entity.Session)
	}
	return &state, nil
}

func (r *fileStateRepository) save(state *entity.State) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
