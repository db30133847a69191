package utils

import "github.com/google/uuid"

// UUIDGenerator issues client-side record identifiers. Time-ordered V7
// UUIDs keep server-side indexes append-friendly.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a V7 UUID string, falling back to V4 if the system
// clock refuses to cooperate.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
