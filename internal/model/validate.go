package model

import (
	"fmt"
	"math"
	"strings"
)

// ErrorCode is a machine-readable validation failure kind.
type ErrorCode string

const (
	CodeMissingName       ErrorCode = "MISSING_NAME"
	CodeInvalidDimensions ErrorCode = "INVALID_DIMENSIONS"
	CodeRoomLimitExceeded ErrorCode = "ROOM_LIMIT_EXCEEDED"
	CodeNonFiniteValue    ErrorCode = "NON_FINITE_VALUE"
	CodeInvalidPrice      ErrorCode = "INVALID_PRICE"
)

// ValidationError is returned when user input is rejected before it reaches
// the estimation engine.
type ValidationError struct {
	Code    ErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError carrying the same code, so callers can write
// errors.Is(err, model.ErrInvalidDimensions).
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is comparisons.
var (
	ErrMissingName       = &ValidationError{Code: CodeMissingName, Message: "room name is required"}
	ErrInvalidDimensions = &ValidationError{Code: CodeInvalidDimensions, Message: "invalid room dimensions"}
	ErrRoomLimitExceeded = &ValidationError{Code: CodeRoomLimitExceeded, Message: "room limit exceeded"}
	ErrNonFiniteValue    = &ValidationError{Code: CodeNonFiniteValue, Message: "value is not a finite number"}
	ErrInvalidPrice      = &ValidationError{Code: CodeInvalidPrice, Message: "invalid unit price"}
)

func newValidationError(code ErrorCode, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateDimensions checks the geometry for the given room type. Walls and
// painting rooms need a positive length and height. Ceilings need a positive
// length and width; a zero drop is allowed.
func ValidateDimensions(t RoomType, d Dimensions) error {
	for _, v := range []float64{float64(d.Length), float64(d.Width), float64(d.Height), float64(d.Drop)} {
		if !finite(v) {
			return newValidationError(CodeNonFiniteValue, "dimensions must be finite numbers")
		}
	}
	if t == RoomCeiling {
		if d.Length <= 0 || d.Width <= 0 || d.Drop < 0 {
			return newValidationError(CodeInvalidDimensions,
				"ceiling needs length and width greater than 0 and a drop of 0 or more (got %.2f x %.2f m, drop %.1f cm)",
				float64(d.Length), float64(d.Width), float64(d.Drop))
		}
		return nil
	}
	if d.Length <= 0 || d.Height <= 0 {
		return newValidationError(CodeInvalidDimensions,
			"%s needs length and height greater than 0 (got %.2f x %.2f m)",
			strings.ToLower(t.String()), float64(d.Length), float64(d.Height))
	}
	return nil
}

// ValidateRoom checks the name and geometry of a room.
func ValidateRoom(r Room) error {
	if strings.TrimSpace(r.Name) == "" {
		return newValidationError(CodeMissingName, "room name is required")
	}
	if err := ValidateDimensions(r.Type, r.Dimensions); err != nil {
		return fmt.Errorf("room %q: %w", r.Name, err)
	}
	return nil
}

// ValidatePrices rejects negative or non-finite unit prices.
func ValidatePrices(prices UnitPriceTable) error {
	for _, k := range MaterialKeys {
		v, ok := prices[k]
		if !ok {
			continue
		}
		if !finite(v) || v < 0 {
			return newValidationError(CodeInvalidPrice, "price for %s must be a non-negative number, got %v", k, v)
		}
	}
	return nil
}

// ValidateRates rejects negative or non-finite labor and painting prices.
func ValidateRates(laborPrice, paintingPrice float64) error {
	if !finite(laborPrice) || laborPrice < 0 {
		return newValidationError(CodeInvalidPrice, "labor price must be a non-negative number, got %v", laborPrice)
	}
	if !finite(paintingPrice) || paintingPrice < 0 {
		return newValidationError(CodeInvalidPrice, "painting price must be a non-negative number, got %v", paintingPrice)
	}
	return nil
}

// AddRoom validates r and appends it, refusing once the project holds maxRooms rooms.
func (p *Project) AddRoom(r Room, maxRooms int) error {
	if maxRooms <= 0 {
		maxRooms = DefaultMaxRooms
	}
	if len(p.Rooms) >= maxRooms {
		return newValidationError(CodeRoomLimitExceeded, "maximum of %d rooms reached", maxRooms)
	}
	if err := ValidateRoom(r); err != nil {
		return err
	}
	p.Rooms = append(p.Rooms, r)
	return nil
}
