package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// FuelType – immutable value object
// ---------------------------------------------------------------------------

// FuelType identifies the propulsion technology of a vehicle.
type FuelType struct {
	value string
}

const (
	fuelPetrol = "PETROL"
	fuelDiesel = "DIESEL"
	fuelEV     = "EV"
	fuelCNG    = "CNG"
)

var (
	FuelPetrol = FuelType{value: fuelPetrol}
	FuelDiesel = FuelType{value: fuelDiesel}
	FuelEV     = FuelType{value: fuelEV}
	FuelCNG    = FuelType{value: fuelCNG}
)

var validFuelTypes = map[string]FuelType{
	fuelPetrol: FuelPetrol,
	fuelDiesel: FuelDiesel,
	fuelEV:     FuelEV,
	fuelCNG:    FuelCNG,
}

// NewFuelType creates a FuelType from a raw string.
func NewFuelType(s string) (FuelType, error) {
	v, ok := validFuelTypes[s]
	if !ok {
		return FuelType{}, fmt.Errorf("invalid fuel type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the fuel type.
func (f FuelType) String() string { return f.value }

// IsZero returns true if the fuel type has not been initialised.
func (f FuelType) IsZero() bool { return f.value == "" }

// Equal returns true when both fuel types carry the same value.
func (f FuelType) Equal(other FuelType) bool { return f.value == other.value }
