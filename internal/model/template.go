package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomTemplate is the geometry of a room without its computed materials.
type RoomTemplate struct {
	Name            string     `json:"name" yaml:"name"`
	Type            RoomType   `json:"type" yaml:"type"`
	Dimensions      Dimensions `json:"dimensions" yaml:"dimensions"`
	IncludePainting bool       `json:"include_painting" yaml:"painting"`
}

// ProjectTemplate is a reusable set of rooms, for example a standard
// apartment layout that a contractor budgets over and over. A zero labor or
// painting price means the company default applies.
type ProjectTemplate struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
	Rooms         []RoomTemplate `json:"rooms"`
	LaborPrice    float64        `json:"labor_price,omitempty"`
	PaintingPrice float64        `json:"painting_price,omitempty"`
}

// NewProjectTemplate captures the rooms and prices of p. Client data and
// computed results are left out.
func NewProjectTemplate(name, description string, p Project) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	rooms := make([]RoomTemplate, len(p.Rooms))
	for i, r := range p.Rooms {
		rooms[i] = RoomTemplate{
			Name:            r.Name,
			Type:            r.Type,
			Dimensions:      r.Dimensions,
			IncludePainting: r.IncludePainting,
		}
	}
	return ProjectTemplate{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Description:   description,
		CreatedAt:     now,
		UpdatedAt:     now,
		Rooms:         rooms,
		LaborPrice:    p.LaborPrice,
		PaintingPrice: p.PaintingPrice,
	}
}

// ToProject creates a new draft project for client from this template.
// Rooms get fresh IDs so they are independent of the template.
func (t ProjectTemplate) ToProject(client Client) Project {
	p := NewProject(client)
	for _, rt := range t.Rooms {
		p.Rooms = append(p.Rooms, NewRoom(rt.Name, rt.Type, rt.Dimensions, rt.IncludePainting))
	}
	p.LaborPrice = t.LaborPrice
	p.PaintingPrice = t.PaintingPrice
	return p
}

// TemplateStore holds a collection of project templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []ProjectTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t ProjectTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
