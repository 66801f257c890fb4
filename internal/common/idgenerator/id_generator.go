// Package idgenerator generates the identifiers a disbursement run
// needs: provider reference UUIDs and the external correlation id
// embedded in each transfer request.
package idgenerator

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	// ReferenceID returns a fresh provider reference.
	ReferenceID() string

	// ExternalID builds the correlation id for one payment instruction,
	// e.g. PAY_1735689600000_EMP001.
	ExternalID(prefix, employeeID string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

func (g *IDGenerator) ReferenceID() string {
	return uuid.NewString()
}

func (g *IDGenerator) ExternalID(prefix, employeeID string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), employeeID)
}
