package model

import (
	"errors"
	"math"
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name string
		t    RoomType
		d    Dimensions
		want error
	}{
		{"wall ok", RoomWall, Dimensions{Length: 4, Height: 2.5}, nil},
		{"painting ok", RoomPainting, Dimensions{Length: 3, Height: 3}, nil},
		{"ceiling ok", RoomCeiling, Dimensions{Length: 5, Width: 4, Drop: 15}, nil},
		{"ceiling zero drop", RoomCeiling, Dimensions{Length: 5, Width: 4}, nil},
		{"wall zero height", RoomWall, Dimensions{Length: 4}, ErrInvalidDimensions},
		{"wall negative length", RoomWall, Dimensions{Length: -1, Height: 2}, ErrInvalidDimensions},
		{"painting zero length", RoomPainting, Dimensions{Height: 2}, ErrInvalidDimensions},
		{"ceiling zero width", RoomCeiling, Dimensions{Length: 5, Height: 3}, ErrInvalidDimensions},
		{"ceiling negative drop", RoomCeiling, Dimensions{Length: 5, Width: 4, Drop: -5}, ErrInvalidDimensions},
		{"NaN length", RoomWall, Dimensions{Length: Meters(math.NaN()), Height: 2}, ErrNonFiniteValue},
		{"Inf drop", RoomCeiling, Dimensions{Length: 5, Width: 4, Drop: Centimeters(math.Inf(1))}, ErrNonFiniteValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.t, tt.d)
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateRoom(t *testing.T) {
	r := NewRoom("   ", RoomWall, Dimensions{Length: 4, Height: 2.5}, false)
	if err := ValidateRoom(r); !errors.Is(err, ErrMissingName) {
		t.Errorf("expected missing name error, got %v", err)
	}

	r = NewRoom("Sala", RoomWall, Dimensions{Length: 4}, false)
	err := ValidateRoom(r)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected invalid dimensions, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Code != CodeInvalidDimensions {
		t.Errorf("expected wrapped ValidationError, got %T", err)
	}

	r = NewRoom("Sala", RoomWall, Dimensions{Length: 4, Height: 2.5}, false)
	if err := ValidateRoom(r); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidationErrorMatchesByCode(t *testing.T) {
	err := &ValidationError{Code: CodeInvalidPrice, Message: "custom"}
	if !errors.Is(err, ErrInvalidPrice) {
		t.Error("errors with the same code should match")
	}
	if errors.Is(err, ErrMissingName) {
		t.Error("errors with different codes should not match")
	}
}

func TestValidatePrices(t *testing.T) {
	if err := ValidatePrices(DefaultPrices()); err != nil {
		t.Errorf("default prices should be valid: %v", err)
	}
	if err := ValidatePrices(UnitPriceTable{}); err != nil {
		t.Errorf("empty table should be valid: %v", err)
	}
	if err := ValidatePrices(UnitPriceTable{KeySheet: -1}); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected invalid price, got %v", err)
	}
	if err := ValidatePrices(UnitPriceTable{KeyWire: math.NaN()}); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected invalid price for NaN, got %v", err)
	}
}

func TestValidateRates(t *testing.T) {
	if err := ValidateRates(35, 25); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateRates(0, 0); err != nil {
		t.Errorf("zero rates are allowed: %v", err)
	}
	if err := ValidateRates(-1, 25); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected invalid labor price, got %v", err)
	}
	if err := ValidateRates(35, math.Inf(1)); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected invalid painting price, got %v", err)
	}
}

func TestProjectAddRoomEnforcesLimit(t *testing.T) {
	p := NewProject(Client{Name: "Maria"})
	for i := 0; i < 3; i++ {
		if err := p.AddRoom(NewRoom("Sala", RoomWall, Dimensions{Length: 1, Height: 1}, false), 3); err != nil {
			t.Fatalf("room %d: %v", i, err)
		}
	}
	err := p.AddRoom(NewRoom("Extra", RoomWall, Dimensions{Length: 1, Height: 1}, false), 3)
	if !errors.Is(err, ErrRoomLimitExceeded) {
		t.Errorf("expected room limit error, got %v", err)
	}
	if len(p.Rooms) != 3 {
		t.Errorf("expected 3 rooms, got %d", len(p.Rooms))
	}
}

func TestProjectAddRoomDefaultLimit(t *testing.T) {
	p := NewProject(Client{Name: "Maria"})
	for i := 0; i < DefaultMaxRooms; i++ {
		if err := p.AddRoom(NewRoom("Sala", RoomPainting, Dimensions{Length: 1, Height: 1}, false), 0); err != nil {
			t.Fatalf("room %d: %v", i, err)
		}
	}
	if err := p.AddRoom(NewRoom("Sala", RoomPainting, Dimensions{Length: 1, Height: 1}, false), 0); !errors.Is(err, ErrRoomLimitExceeded) {
		t.Errorf("expected room limit error at %d rooms, got %v", DefaultMaxRooms, err)
	}
}

func TestProjectAddRoomRejectsInvalid(t *testing.T) {
	p := NewProject(Client{Name: "Maria"})
	if err := p.AddRoom(NewRoom("", RoomWall, Dimensions{Length: 1, Height: 1}, false), 0); !errors.Is(err, ErrMissingName) {
		t.Errorf("expected missing name error, got %v", err)
	}
	if len(p.Rooms) != 0 {
		t.Error("invalid room should not be added")
	}
}
