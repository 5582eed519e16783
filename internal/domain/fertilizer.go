package domain

import "fmt"

// FertilizerType represents one category of subsidized fertilizer
type FertilizerType string

const (
	FertilizerUrea    FertilizerType = "UREA"
	FertilizerPhonska FertilizerType = "PHONSKA"
	FertilizerOrganik FertilizerType = "ORGANIK"
)

// FertilizerTypes lists every valid type, in the order grants are created
var FertilizerTypes = []FertilizerType{FertilizerUrea, FertilizerPhonska, FertilizerOrganik}

// Valid reports whether the type is one of the closed set
func (t FertilizerType) Valid() bool {
	switch t {
	case FertilizerUrea, FertilizerPhonska, FertilizerOrganik:
		return true
	}
	return false
}

// ParseFertilizerType converts an external string into a FertilizerType
func ParseFertilizerType(s string) (FertilizerType, error) {
	t := FertilizerType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown fertilizer type %q", ErrInvalidInput, s)
	}
	return t, nil
}
