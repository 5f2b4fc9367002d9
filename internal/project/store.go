package project

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// Store persists calculated budgets.
type Store interface {
	// SaveProject inserts p or replaces the project with the same ID.
	SaveProject(ctx context.Context, p model.Project) error
	// Project returns the project with the given ID and whether it exists.
	Project(ctx context.Context, id string) (model.Project, bool, error)
	// Projects returns every saved project in insertion order.
	Projects(ctx context.Context) ([]model.Project, error)
	// DeleteProject removes a project and reports whether it existed.
	DeleteProject(ctx context.Context, id string) (bool, error)
	Close() error
}

// OpenStore opens the project store selected by backend inside dir.
func OpenStore(backend, dir string) (Store, error) {
	switch backend {
	case model.StoreSQLite:
		return OpenSQLite(filepath.Join(dir, sqliteFile))
	case model.StoreJSON, "":
		return NewJSONStore(filepath.Join(dir, projectsFile)), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// SearchProjects returns the projects whose client name or service type
// contains query, ignoring case, newest first. An empty query matches all.
func SearchProjects(projects []model.Project, query string) []model.Project {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if query == "" ||
			strings.Contains(strings.ToLower(p.Client.Name), query) ||
			strings.Contains(strings.ToLower(p.Type), query) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
