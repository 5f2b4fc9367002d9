package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meters is a length in meters. All room dimensions except the ceiling drop use it.
type Meters float64

// Centimeters is a length in centimeters. Only the ceiling drop height is expressed this way.
type Centimeters float64

// Meters converts a centimeter length to meters.
func (c Centimeters) Meters() Meters {
	return Meters(float64(c) / 100)
}

// RoomType selects which material branch runs and which area formula applies.
type RoomType int

const (
	RoomWall     RoomType = iota // Drywall partition, area = length x height
	RoomCeiling                  // Suspended ceiling, area = length x width
	RoomPainting                 // Painting only, area = length x height
)

func (t RoomType) String() string {
	switch t {
	case RoomCeiling:
		return "Forro"
	case RoomPainting:
		return "Pintura"
	default:
		return "Parede"
	}
}

// ParseRoomType accepts the Portuguese labels used on saved budgets as well as
// English names, case-insensitively.
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parede", "wall", "w":
		return RoomWall, nil
	case "forro", "ceiling", "c":
		return RoomCeiling, nil
	case "pintura", "painting", "paint", "p":
		return RoomPainting, nil
	default:
		return RoomWall, fmt.Errorf("unknown room type %q", s)
	}
}

func (t RoomType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *RoomType) UnmarshalText(text []byte) error {
	parsed, err := ParseRoomType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Category groups material lines on the budget.
type Category int

const (
	CategoryDrywall Category = iota
	CategoryPainting
)

func (c Category) String() string {
	if c == CategoryPainting {
		return "Pintura"
	}
	return "Drywall"
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "drywall":
		*c = CategoryDrywall
	case "pintura", "painting":
		*c = CategoryPainting
	default:
		return fmt.Errorf("unknown material category %q", string(text))
	}
	return nil
}

// Dimensions describes a room. Height is the wall height in meters for walls
// and painting rooms; Drop is the ceiling drop in centimeters and is only read
// for ceilings.
type Dimensions struct {
	Length Meters      `json:"length" yaml:"length"`
	Width  Meters      `json:"width" yaml:"width"`
	Height Meters      `json:"height" yaml:"height"`
	Drop   Centimeters `json:"drop" yaml:"drop"`
}

// Area returns the surface in m² for the given room type.
func (d Dimensions) Area(t RoomType) float64 {
	if t == RoomCeiling {
		return float64(d.Length) * float64(d.Width)
	}
	return float64(d.Length) * float64(d.Height)
}

// MaterialLine is one purchasable item. Category and Name together identify
// the line when lists from several rooms are merged.
type MaterialLine struct {
	Category  Category `json:"category"`
	Name      string   `json:"name"`
	Quantity  float64  `json:"quantity"`
	Unit      string   `json:"unit"`
	UnitPrice float64  `json:"unit_price"`
}

// LineKey is the merge identity of a material line.
type LineKey struct {
	Category Category
	Name     string
}

// Key returns the merge identity of the line.
func (m MaterialLine) Key() LineKey {
	return LineKey{Category: m.Category, Name: m.Name}
}

// Subtotal returns quantity times unit price.
func (m MaterialLine) Subtotal() float64 {
	return m.Quantity * m.UnitPrice
}

// Totals holds the monetary summary of a room or a whole project.
type Totals struct {
	MaterialTotal float64 `json:"material_total"`
	LaborTotal    float64 `json:"labor_total"`
	PaintingTotal float64 `json:"painting_total"`
	TotalValue    float64 `json:"total_value"`
	DownPayment   float64 `json:"down_payment"`
}

// Balance returns what is left to pay after the down payment.
func (t Totals) Balance() float64 {
	return t.TotalValue - t.DownPayment
}

// Client is the customer a budget is addressed to.
type Client struct {
	Name    string `json:"name" yaml:"name"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
	Address string `json:"address" yaml:"address"`
}

// Room is one environment of a project with its own geometry.
type Room struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            RoomType       `json:"type"`
	Dimensions      Dimensions     `json:"dimensions"`
	IncludePainting bool           `json:"include_painting"`
	Materials       []MaterialLine `json:"materials"`
}

// NewRoom creates a room with a fresh ID. Painting rooms always include painting.
func NewRoom(name string, t RoomType, dims Dimensions, includePainting bool) Room {
	if t != RoomCeiling {
		dims.Width = 0
		dims.Drop = 0
	}
	return Room{
		ID:              "room_" + uuid.New().String()[:8],
		Name:            strings.TrimSpace(name),
		Type:            t,
		Dimensions:      dims,
		IncludePainting: t == RoomPainting || includePainting,
		Materials:       []MaterialLine{},
	}
}

// Area returns the room surface in m².
func (r Room) Area() float64 {
	return r.Dimensions.Area(r.Type)
}

// Paints reports whether painting materials and labor apply to the room.
func (r Room) Paints() bool {
	return r.Type == RoomPainting || r.IncludePainting
}

// ProjectStatus tracks a budget through its life.
type ProjectStatus string

const (
	StatusDraft    ProjectStatus = "draft"
	StatusSent     ProjectStatus = "sent"
	StatusApproved ProjectStatus = "approved"
)

// Project is a budget: a client, its rooms and the computed results.
type Project struct {
	ID              string         `json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	Client          Client         `json:"client"`
	Type            string         `json:"type"`
	Rooms           []Room         `json:"rooms"`
	IncludePainting bool           `json:"include_painting"`
	LaborPrice      float64        `json:"labor_price"`
	PaintingPrice   float64        `json:"painting_price"`
	TotalArea       float64        `json:"total_area"`
	Materials       []MaterialLine `json:"materials"`
	Totals          Totals         `json:"totals"`
	Status          ProjectStatus  `json:"status"`
}

func NewProject(client Client) Project {
	return Project{
		ID:        "proj_" + uuid.New().String()[:8],
		CreatedAt: time.Now().UTC(),
		Client:    client,
		Rooms:     []Room{},
		Materials: []MaterialLine{},
		Status:    StatusDraft,
	}
}

// RemoveRoom drops the room with the given ID. It reports whether a room was removed.
func (p *Project) RemoveRoom(id string) bool {
	for i, r := range p.Rooms {
		if r.ID == id {
			p.Rooms = append(p.Rooms[:i], p.Rooms[i+1:]...)
			return true
		}
	}
	return false
}
