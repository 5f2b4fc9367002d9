package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// JSONStore keeps every project in a single JSON file. The file is read and
// rewritten on each call.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

type projectsDocument struct {
	Projects []model.Project `json:"projects"`
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) SaveProject(_ context.Context, p model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range doc.Projects {
		if doc.Projects[i].ID == p.ID {
			doc.Projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Projects = append(doc.Projects, p)
	}
	if err := writeJSON(s.path, doc); err != nil {
		return fmt.Errorf("failed to write projects: %w", err)
	}
	return nil
}

func (s *JSONStore) Project(_ context.Context, id string) (model.Project, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return model.Project{}, false, err
	}
	for _, p := range doc.Projects {
		if p.ID == id {
			return p, true, nil
		}
	}
	return model.Project{}, false, nil
}

func (s *JSONStore) Projects(_ context.Context) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Projects, nil
}

func (s *JSONStore) DeleteProject(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}
	for i, p := range doc.Projects {
		if p.ID == id {
			doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
			if err := writeJSON(s.path, doc); err != nil {
				return false, fmt.Errorf("failed to write projects: %w", err)
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) load() (projectsDocument, error) {
	doc := projectsDocument{Projects: []model.Project{}}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("failed to read projects: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse projects: %w", err)
	}
	if doc.Projects == nil {
		doc.Projects = []model.Project{}
	}
	return doc, nil
}
