package oid

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var generator Generator = &UniqueGenerator{}

/* Generator */

type Generator interface {
	New() OID
}

// Reset restores the original unique OID generator.
// Useful in tests with a defer after overriding the default generator.
func Reset() {
	generator = &UniqueGenerator{}
}

/*
 * UniqueGenerator
 */

// UniqueGenerator is a production-grade Generator returning unique, random OIDs.
type UniqueGenerator struct{}

func NewUniqueGenerator() *UniqueGenerator {
	return &UniqueGenerator{}
}

// New generates an OID.
// Ex: 123e4567e89b12d3a456426655440000
func (g *UniqueGenerator) New() OID {
	return OID(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

/*
 * SuiteGenerator
 */

// SuiteGenerator returns a predefined suite of OIDs.
// This generator is useful for tests when OIDs are relevant for the test case.
type SuiteGenerator struct {
	mu       sync.Mutex
	nextOIDs []string
}

func NewSuiteGenerator(nextOIDs ...string) *SuiteGenerator {
	return &SuiteGenerator{nextOIDs: nextOIDs}
}

func (g *SuiteGenerator) New() OID {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.nextOIDs) > 0 {
		oid, nextOIDs := g.nextOIDs[0], g.nextOIDs[1:]
		g.nextOIDs = nextOIDs
		return OID(oid)
	}
	panic("No more OIDs")
}

/*
 * SequenceGenerator
 */

// SequenceGenerator returns numbered OIDs in a predictable format.
// This generator is useful for tests when checking different jobs.
type SequenceGenerator struct {
	mu    sync.Mutex
	count int
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{count: 0}
}

func (g *SequenceGenerator) New() OID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count++
	return OID(fmt.Sprintf("%032d", g.count))
}
