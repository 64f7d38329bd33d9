// Package snapshot persists the whole AppState as a single JSON document.
// There is no delta persistence and no schema versioning: load reads the one
// document and falls back to the sample dataset on any read or parse failure.
package snapshot

import (
	"encoding/json"

	"github.com/peterbourgon/diskv/v3"

	"tempo/internal/model"
)

const stateKey = "appstate"

type Store struct {
	d *diskv.Diskv
}

func Open(dataDir string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     dataDir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// Load returns the persisted state, or the sample dataset when no snapshot
// exists or the document does not parse.
func (s *Store) Load() model.AppState {
	b, err := s.d.Read(stateKey)
	if err != nil {
		return Sample()
	}
	var st model.AppState
	if err := json.Unmarshal(b, &st); err != nil {
		return Sample()
	}
	if st.Tasks == nil {
		st.Tasks = []model.Task{}
	}
	if st.TimeBlocks == nil {
		st.TimeBlocks = []model.TimeBlock{}
	}
	if st.ChatHistory == nil {
		st.ChatHistory = []model.ChatMessage{}
	}
	return st
}

// Save writes the state wholesale, replacing any previous snapshot.
func (s *Store) Save(st model.AppState) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return s.d.Write(stateKey, b)
}
