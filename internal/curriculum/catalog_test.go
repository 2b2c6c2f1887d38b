package curriculum

import (
	"errors"
	"testing"
)

func TestDefault_GradesInOrder(t *testing.T) {
	c := Default()
	grades := c.Grades()
	if len(grades) != 6 {
		t.Fatalf("len(Grades()) = %d, want 6", len(grades))
	}
	for i := 1; i < len(grades); i++ {
		if grades[i-1].Order >= grades[i].Order {
			t.Errorf("grade %s (order %d) before %s (order %d)",
				grades[i-1].ID, grades[i-1].Order, grades[i].ID, grades[i].Order)
		}
	}
	if grades[0].ID != "middle-1" {
		t.Errorf("first grade = %s, want middle-1", grades[0].ID)
	}
}

func TestDefault_UnitCounts(t *testing.T) {
	c := Default()
	for _, g := range c.Grades() {
		units := c.Units(g.ID)
		if len(units) != g.TotalUnits {
			t.Errorf("grade %s: %d units, want %d", g.ID, len(units), g.TotalUnits)
		}
		for i, u := range units {
			if u.Number != i+1 {
				t.Errorf("grade %s: unit %d has Number %d", g.ID, i, u.Number)
			}
		}
	}
}

func TestDefault_LessonOneContent(t *testing.T) {
	u, err := Default().Unit("middle-1-lesson-1")
	if err != nil {
		t.Fatalf("Unit: %v", err)
	}
	if len(u.Words) != 20 {
		t.Errorf("words = %d, want 20", len(u.Words))
	}
	if len(u.Phrases) != 10 {
		t.Errorf("phrases = %d, want 10", len(u.Phrases))
	}
	if len(u.Grammar) != 2 {
		t.Errorf("grammar points = %d, want 2", len(u.Grammar))
	}
	if u.Reading == nil || u.Reading.WordCount != 280 {
		t.Errorf("reading passage missing or wrong word count: %+v", u.Reading)
	}
	if u.Label() != "Lesson 1" {
		t.Errorf("Label() = %q, want %q", u.Label(), "Lesson 1")
	}
	if u.Mock {
		t.Error("lesson 1 should not be a placeholder")
	}
}

func TestUnit_NotFound(t *testing.T) {
	_, err := Default().Unit("middle-9-lesson-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	_, err = Default().Grade("college-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUnits_UnknownGradeIsEmpty(t *testing.T) {
	if got := Default().Units("nope"); len(got) != 0 {
		t.Errorf("Units(nope) = %d units, want 0", len(got))
	}
}

func TestAddUnit_CustomGradeCreatedLazily(t *testing.T) {
	c := Default()
	u := CustomUnit("Travel", 1, []Word{{ID: "custom-travel-w1", English: "ticket", Korean: "표"}})
	if err := c.AddUnit(u); err != nil {
		t.Fatalf("AddUnit: %v", err)
	}
	g, err := c.Grade(CustomGradeID)
	if err != nil {
		t.Fatalf("Grade(custom): %v", err)
	}
	grades := c.Grades()
	if grades[len(grades)-1].ID != g.ID {
		t.Errorf("custom grade should sort last, got %s", grades[len(grades)-1].ID)
	}
	if _, err := c.Unit("custom-travel"); err != nil {
		t.Errorf("Unit(custom-travel): %v", err)
	}
}

func TestAddUnit_Rejects(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		unit Unit
	}{
		{"unknown grade", Unit{ID: "x-1", GradeID: "x"}},
		{"duplicate id", Unit{ID: "middle-1-lesson-1", GradeID: "middle-1"}},
		{"duplicate word", Unit{ID: "middle-1-extra", GradeID: "middle-1", Words: []Word{{ID: "w"}, {ID: "w"}}}},
		{"reserved grammar id", Unit{ID: "middle-1-extra", GradeID: "middle-1", Grammar: []GrammarPoint{{ID: "reading"}}}},
	}
	for _, tt := range tests {
		if err := c.AddUnit(tt.unit); err == nil {
			t.Errorf("%s: AddUnit succeeded, want error", tt.name)
		}
	}
}
