// Package curriculum holds the grade, unit and set catalog the learner
// studies from, plus word list import for custom units.
package curriculum

import (
	"fmt"
	"slices"
)

// Catalog is an indexed, read-mostly view of grades and units.
type Catalog struct {
	grades    []Grade
	gradeByID map[string]int
	units     map[string][]Unit // by grade id, ascending Number
	unitGrade map[string]string // unit id -> grade id
}

// New builds a catalog from grades and units. Units referring to an unknown
// grade are rejected.
func New(grades []Grade, units []Unit) (*Catalog, error) {
	c := &Catalog{
		gradeByID: make(map[string]int, len(grades)),
		units:     make(map[string][]Unit, len(grades)),
		unitGrade: make(map[string]string, len(units)),
	}
	for _, g := range grades {
		if err := c.addGrade(g); err != nil {
			return nil, err
		}
	}
	for _, u := range units {
		if err := c.AddUnit(u); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(seedGrades(), seedUnits())
	if err != nil {
		panic(fmt.Sprintf("curriculum: invalid seed data: %v", err))
	}
	return c
}

func (c *Catalog) addGrade(g Grade) error {
	if g.ID == "" {
		return fmt.Errorf("grade with empty id")
	}
	if _, dup := c.gradeByID[g.ID]; dup {
		return fmt.Errorf("duplicate grade %q", g.ID)
	}
	c.grades = append(c.grades, g)
	slices.SortStableFunc(c.grades, func(a, b Grade) int { return a.Order - b.Order })
	for i, gr := range c.grades {
		c.gradeByID[gr.ID] = i
	}
	return nil
}

// AddUnit inserts u, keeping units ordered by Number. Custom units create
// the custom grade on first use.
func (c *Catalog) AddUnit(u Unit) error {
	if err := validateUnit(u); err != nil {
		return err
	}
	if _, ok := c.gradeByID[u.GradeID]; !ok {
		if u.GradeID != CustomGradeID {
			return fmt.Errorf("unit %q: grade %q: %w", u.ID, u.GradeID, ErrNotFound)
		}
		if err := c.addGrade(customGrade()); err != nil {
			return err
		}
	}
	if _, dup := c.unitGrade[u.ID]; dup {
		return fmt.Errorf("duplicate unit %q", u.ID)
	}

	list := append(c.units[u.GradeID], u)
	slices.SortStableFunc(list, func(a, b Unit) int { return a.Number - b.Number })
	c.units[u.GradeID] = list
	c.unitGrade[u.ID] = u.GradeID
	return nil
}

// Grades returns all grades in ascending order.
func (c *Catalog) Grades() []Grade {
	return slices.Clone(c.grades)
}

// Grade looks up a grade by id.
func (c *Catalog) Grade(id string) (Grade, error) {
	i, ok := c.gradeByID[id]
	if !ok {
		return Grade{}, fmt.Errorf("grade %q: %w", id, ErrNotFound)
	}
	return c.grades[i], nil
}

// Units returns the grade's units in ascending lesson order. Unknown grades
// yield an empty list.
func (c *Catalog) Units(gradeID string) []Unit {
	return slices.Clone(c.units[gradeID])
}

// Unit looks up a unit by id across all grades.
func (c *Catalog) Unit(id string) (Unit, error) {
	gradeID, ok := c.unitGrade[id]
	if !ok {
		return Unit{}, fmt.Errorf("unit %q: %w", id, ErrNotFound)
	}
	for _, u := range c.units[gradeID] {
		if u.ID == id {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("unit %q: %w", id, ErrNotFound)
}

// validateUnit checks ids and that no grammar set id shadows a fixed set id.
func validateUnit(u Unit) error {
	if u.ID == "" || u.GradeID == "" {
		return fmt.Errorf("unit %q: id and grade id are required", u.ID)
	}
	seen := make(map[string]bool)
	for _, w := range u.Words {
		if w.ID == "" {
			return fmt.Errorf("unit %q: word %q has no id", u.ID, w.English)
		}
		if seen[w.ID] {
			return fmt.Errorf("unit %q: duplicate word id %q", u.ID, w.ID)
		}
		seen[w.ID] = true
	}
	for _, gp := range u.Grammar {
		if gp.ID == "" {
			return fmt.Errorf("unit %q: grammar point %q has no id", u.ID, gp.Title)
		}
		if gp.ID == "vocab" || gp.ID == "reading" {
			return fmt.Errorf("unit %q: grammar id %q collides with a fixed set id", u.ID, gp.ID)
		}
	}
	return nil
}
