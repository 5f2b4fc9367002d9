package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

// Job is a complete budget request written by hand, typically job.yaml:
//
//	client:
//	  name: Maria Souza
//	  phone: (11) 98888-7777
//	labor_price: 40
//	prices:
//	  sheet: 44.90
//	rooms:
//	  - name: Sala
//	    type: parede
//	    length: 4
//	    height: 2.5
//	    painting: true
//	  - name: Quarto
//	    type: forro
//	    length: 5
//	    width: 4
//	    drop: 15
type Job struct {
	Client        model.Client       `yaml:"client"`
	LaborPrice    *float64           `yaml:"labor_price"`
	PaintingPrice *float64           `yaml:"painting_price"`
	Prices        map[string]float64 `yaml:"prices"`
	Rooms         []JobRoom          `yaml:"rooms"`
}

// JobRoom is one room entry of a job file. A missing type means a wall.
type JobRoom struct {
	Name     string            `yaml:"name"`
	Type     model.RoomType    `yaml:"type"`
	Length   model.Meters      `yaml:"length"`
	Width    model.Meters      `yaml:"width"`
	Height   model.Meters      `yaml:"height"`
	Drop     model.Centimeters `yaml:"drop"`
	Painting bool              `yaml:"painting"`
}

// LoadJob reads and parses a job file.
func LoadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("read job file: %w", err)
	}
	return ParseJob(data)
}

// ParseJob decodes a job document. Unknown fields are rejected so typos in
// hand-written files do not go unnoticed.
func ParseJob(data []byte) (Job, error) {
	var job Job
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		if errors.Is(err, io.EOF) {
			return Job{}, fmt.Errorf("parse job: document is empty")
		}
		return Job{}, fmt.Errorf("parse job: %w", err)
	}
	if len(job.Rooms) == 0 {
		return Job{}, fmt.Errorf("parse job: no rooms listed")
	}
	return job, nil
}

// Project builds a draft project from the job, validating every room and the
// room limit.
func (j Job) Project(maxRooms int) (model.Project, error) {
	p := model.NewProject(j.Client)
	for i, jr := range j.Rooms {
		name := jr.Name
		if name == "" {
			name = fmt.Sprintf("Ambiente %d", i+1)
		}
		dims := model.Dimensions{Length: jr.Length, Width: jr.Width, Height: jr.Height, Drop: jr.Drop}
		if err := p.AddRoom(model.NewRoom(name, jr.Type, dims, jr.Painting), maxRooms); err != nil {
			return model.Project{}, fmt.Errorf("room %d: %w", i+1, err)
		}
	}
	return p, nil
}

// PriceTable returns base with the job's price overrides applied.
func (j Job) PriceTable(base model.UnitPriceTable) (model.UnitPriceTable, error) {
	out := base.Clone()
	for name, price := range j.Prices {
		key, ok := model.ParseMaterialKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown price key %q", name)
		}
		out[key] = price
	}
	if err := model.ValidatePrices(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Rates returns the job's labor and painting prices, falling back to the
// company defaults for the ones not set.
func (j Job) Rates(company model.Company) (labor, painting float64) {
	labor, painting = company.DefaultLaborPrice, company.DefaultPaintingPrice
	if j.LaborPrice != nil {
		labor = *j.LaborPrice
	}
	if j.PaintingPrice != nil {
		painting = *j.PaintingPrice
	}
	return labor, painting
}
