package domain

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedByTemplate tags compositions produced without any copy
// variation provider.
const GeneratedByTemplate = "template"

// Composition is one generated design document plus its provenance.
// Immutable after creation except as replaced wholesale.
type Composition struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Design      DesignJSON `json:"design"`
	GeneratedBy string     `json:"generatedBy"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewComposition mints a composition with a fresh id.
func NewComposition(name string, design DesignJSON, generatedBy string) Composition {
	return Composition{
		ID:          uuid.NewString(),
		Name:        name,
		Design:      design,
		GeneratedBy: generatedBy,
		CreatedAt:   time.Now(),
	}
}

// Project owns an ordered list of compositions. Compositions are never
// shared between projects.
type Project struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Compositions []Composition `json:"compositions"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// NewProject creates an empty project.
func NewProject(name string) *Project {
	now := time.Now()
	return &Project{
		ID:           uuid.NewString(),
		Name:         name,
		Compositions: []Composition{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AddComposition appends a composition and refreshes UpdatedAt.
func (p *Project) AddComposition(c Composition) {
	p.Compositions = append(p.Compositions, c)
	p.UpdatedAt = time.Now()
}

// RemoveComposition drops the composition with the given id, if present,
// and refreshes UpdatedAt.
func (p *Project) RemoveComposition(id string) {
	kept := p.Compositions[:0]
	for _, c := range p.Compositions {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	p.Compositions = kept
	p.UpdatedAt = time.Now()
}
