package schema

import (
	"strings"
	"testing"
)

func TestDefaultSchemaIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("default schema failed validation: %v", err)
	}
	if len(s.Tables) != 6 {
		t.Errorf("expected 6 tables in default schema, got %d", len(s.Tables))
	}
}

func TestDefaultSchemaShape(t *testing.T) {
	s := Default()

	byName := make(map[string]Table)
	for _, table := range s.Tables {
		byName[table.Name] = table
	}

	tag, ok := byName["tagvalues"]
	if !ok {
		t.Fatal("default schema missing tagvalues")
	}
	if len(tag.Columns) != 6 {
		t.Errorf("tagvalues: expected 6 columns, got %d", len(tag.Columns))
	}
	if tag.Columns[0].Name != "tag_name" || tag.Columns[0].Type != TypeText {
		t.Errorf("unexpected first tagvalues column: %+v", tag.Columns[0])
	}

	// loggedalarms carries the extra duration column
	active := byName["activealarms"]
	logged := byName["loggedalarms"]
	if len(logged.Columns) != len(active.Columns)+1 {
		t.Errorf("loggedalarms should have one more column than activealarms: %d vs %d",
			len(logged.Columns), len(active.Columns))
	}
	last := logged.Columns[len(logged.Columns)-1]
	if last.Name != "duration" {
		t.Errorf("expected loggedalarms to end with duration, got %s", last.Name)
	}
}

func TestValidateRejectsDuplicateTable(t *testing.T) {
	s := Schema{Tables: []Table{
		{Name: "t1", Columns: []Column{{Name: "a", Type: TypeText}}},
		{Name: "t1", Columns: []Column{{Name: "b", Type: TypeText}}},
	}}
	err := s.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate table") {
		t.Errorf("expected duplicate table error, got %v", err)
	}
}

func TestValidateRejectsDuplicateColumn(t *testing.T) {
	s := Schema{Tables: []Table{
		{Name: "t1", Columns: []Column{
			{Name: "a", Type: TypeText},
			{Name: "a", Type: TypeInt4},
		}},
	}}
	err := s.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate column") {
		t.Errorf("expected duplicate column error, got %v", err)
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	s := Schema{Tables: []Table{
		{Name: "t1", Columns: []Column{{Name: "a", Type: "uuid"}}},
	}}
	err := s.Validate()
	if err == nil || !strings.Contains(err.Error(), "unknown type") {
		t.Errorf("expected unknown type error, got %v", err)
	}
}

func TestValidateRejectsEmptyNamesAndTables(t *testing.T) {
	if err := (Schema{Tables: []Table{{Name: "", Columns: []Column{{Name: "a", Type: TypeText}}}}}).Validate(); err == nil {
		t.Error("empty table name accepted")
	}
	if err := (Schema{Tables: []Table{{Name: "t", Columns: nil}}}).Validate(); err == nil {
		t.Error("table without columns accepted")
	}
	if err := (Schema{Tables: []Table{{Name: "t", Columns: []Column{{Name: "", Type: TypeText}}}}}).Validate(); err == nil {
		t.Error("empty column name accepted")
	}
}
