package model

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDimensionsArea(t *testing.T) {
	d := Dimensions{Length: 5, Width: 4, Height: 2.5, Drop: 15}

	if got := d.Area(RoomWall); got != 12.5 {
		t.Errorf("wall area: expected 12.5, got %f", got)
	}
	if got := d.Area(RoomPainting); got != 12.5 {
		t.Errorf("painting area: expected 12.5, got %f", got)
	}
	if got := d.Area(RoomCeiling); got != 20 {
		t.Errorf("ceiling area: expected 20, got %f", got)
	}
}

func TestCentimetersToMeters(t *testing.T) {
	if got := Centimeters(15).Meters(); got != 0.15 {
		t.Errorf("expected 0.15 m, got %f", got)
	}
}

func TestParseRoomType(t *testing.T) {
	cases := map[string]RoomType{
		"Parede":   RoomWall,
		"wall":     RoomWall,
		" FORRO ":  RoomCeiling,
		"ceiling":  RoomCeiling,
		"Pintura":  RoomPainting,
		"painting": RoomPainting,
		"p":        RoomPainting,
	}
	for in, want := range cases {
		got, err := ParseRoomType(in)
		if err != nil {
			t.Errorf("ParseRoomType(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseRoomType(%q): expected %v, got %v", in, want, got)
		}
	}

	if _, err := ParseRoomType("telhado"); err == nil {
		t.Error("expected error for unknown room type")
	}
}

func TestRoomTypeJSONUsesLabels(t *testing.T) {
	data, err := json.Marshal(struct {
		Type RoomType `json:"type"`
	}{RoomCeiling})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"Forro"}` {
		t.Errorf("unexpected JSON %s", data)
	}

	var back struct {
		Type RoomType `json:"type"`
	}
	if err := json.Unmarshal([]byte(`{"type":"Pintura"}`), &back); err != nil {
		t.Fatal(err)
	}
	if back.Type != RoomPainting {
		t.Errorf("expected painting, got %v", back.Type)
	}
}

func TestRoomTypeYAML(t *testing.T) {
	var r struct {
		Type RoomType `yaml:"type"`
	}
	if err := yaml.Unmarshal([]byte("type: ceiling\n"), &r); err != nil {
		t.Fatal(err)
	}
	if r.Type != RoomCeiling {
		t.Errorf("expected ceiling, got %v", r.Type)
	}
	if err := yaml.Unmarshal([]byte("type: porão\n"), &r); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestCategoryText(t *testing.T) {
	var c Category
	if err := c.UnmarshalText([]byte("Pintura")); err != nil || c != CategoryPainting {
		t.Errorf("expected painting category, got %v (%v)", c, err)
	}
	if err := c.UnmarshalText([]byte("drywall")); err != nil || c != CategoryDrywall {
		t.Errorf("expected drywall category, got %v (%v)", c, err)
	}
	if err := c.UnmarshalText([]byte("eletrica")); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestMaterialLineKeyAndSubtotal(t *testing.T) {
	a := MaterialLine{Category: CategoryDrywall, Name: "Fita Telada", Quantity: 3, UnitPrice: 19.9}
	b := MaterialLine{Category: CategoryPainting, Name: "Fita Telada", Quantity: 3, UnitPrice: 19.9}

	if a.Key() == b.Key() {
		t.Error("lines in different categories must not share a key")
	}
	if got := a.Subtotal(); got < 59.69 || got > 59.71 {
		t.Errorf("expected subtotal 59.70, got %f", got)
	}
}

func TestTotalsBalance(t *testing.T) {
	tot := Totals{TotalValue: 1000, DownPayment: 600}
	if tot.Balance() != 400 {
		t.Errorf("expected balance 400, got %f", tot.Balance())
	}
}

func TestNewRoom(t *testing.T) {
	r := NewRoom("  Sala  ", RoomWall, Dimensions{Length: 4, Width: 3, Height: 2.5, Drop: 20}, false)

	if !strings.HasPrefix(r.ID, "room_") || len(r.ID) != len("room_")+8 {
		t.Errorf("unexpected room ID %q", r.ID)
	}
	if r.Name != "Sala" {
		t.Errorf("expected trimmed name, got %q", r.Name)
	}
	if r.Dimensions.Width != 0 || r.Dimensions.Drop != 0 {
		t.Error("wall rooms must not carry width or drop")
	}
	if r.Materials == nil {
		t.Error("Materials should not be nil")
	}
	if r.Paints() {
		t.Error("wall without painting should not paint")
	}

	p := NewRoom("Hall", RoomPainting, Dimensions{Length: 2, Height: 2}, false)
	if !p.IncludePainting || !p.Paints() {
		t.Error("painting rooms always include painting")
	}

	c := NewRoom("Forro", RoomCeiling, Dimensions{Length: 5, Width: 4, Drop: 15}, false)
	if c.Dimensions.Drop != 15 || c.Area() != 20 {
		t.Errorf("ceiling geometry lost: %+v", c.Dimensions)
	}

	if NewRoom("a", RoomWall, Dimensions{}, false).ID == NewRoom("a", RoomWall, Dimensions{}, false).ID {
		t.Error("room IDs should be unique")
	}
}

func TestNewProject(t *testing.T) {
	p := NewProject(Client{Name: "Maria"})

	if !strings.HasPrefix(p.ID, "proj_") {
		t.Errorf("unexpected project ID %q", p.ID)
	}
	if p.Status != StatusDraft {
		t.Errorf("expected draft status, got %s", p.Status)
	}
	if p.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if p.Rooms == nil || p.Materials == nil {
		t.Error("Rooms and Materials should not be nil")
	}
}

func TestProjectRemoveRoom(t *testing.T) {
	p := NewProject(Client{Name: "Maria"})
	a := NewRoom("A", RoomWall, Dimensions{Length: 1, Height: 1}, false)
	b := NewRoom("B", RoomWall, Dimensions{Length: 1, Height: 1}, false)
	p.Rooms = append(p.Rooms, a, b)

	if !p.RemoveRoom(a.ID) {
		t.Fatal("expected room to be removed")
	}
	if len(p.Rooms) != 1 || p.Rooms[0].ID != b.ID {
		t.Errorf("unexpected rooms after removal: %+v", p.Rooms)
	}
	if p.RemoveRoom("room_missing") {
		t.Error("removing an unknown room should report false")
	}
}

func TestProjectJSONRoundTripKeepsRoomTypes(t *testing.T) {
	p := NewProject(Client{Name: "Maria"})
	p.Rooms = append(p.Rooms, NewRoom("Forro", RoomCeiling, Dimensions{Length: 5, Width: 4, Drop: 15}, true))

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"type":"Forro"`) {
		t.Errorf("room type should be stored by label: %s", data)
	}

	var back Project
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Rooms[0].Type != RoomCeiling || back.Rooms[0].Dimensions.Drop != 15 {
		t.Errorf("room not restored: %+v", back.Rooms[0])
	}
}
