package table

import (
	"reflect"
	"testing"
)

func numericColumn(name string, values []string, floats []float64, missing []bool) Column {
	return Column{Name: name, Kind: KindNumeric, Values: values, Floats: floats, Missing: missing}
}

func TestNew_MisalignedColumns(t *testing.T) {
	_, err := New([]Column{
		{Name: "a", Kind: KindText, Values: []string{"x", "y"}},
		{Name: "b", Kind: KindText, Values: []string{"x"}},
	})
	if err == nil {
		t.Fatal("expected error for unequal column lengths")
	}
}

func TestNew_MisalignedNumericParse(t *testing.T) {
	_, err := New([]Column{
		{Name: "a", Kind: KindNumeric, Values: []string{"1", "2"}, Floats: []float64{1}, Missing: []bool{false, false}},
	})
	if err == nil {
		t.Fatal("expected error for misaligned parsed values")
	}
}

func TestHeaders_PreserveOrder(t *testing.T) {
	tbl, err := New([]Column{
		{Name: "zulu", Kind: KindText, Values: []string{"a"}},
		{Name: "alpha", Kind: KindText, Values: []string{"b"}},
		{Name: "mike", Kind: KindText, Values: []string{"c"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{"zulu", "alpha", "mike"}
	if got := tbl.Headers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Headers() = %v, want %v", got, want)
	}
}

func TestNumericColumnsAndLookup(t *testing.T) {
	tbl, err := New([]Column{
		numericColumn("age", []string{"30", ""}, []float64{30, 0}, []bool{false, true}),
		{Name: "name", Kind: KindText, Values: []string{"ann", "bob"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := tbl.NumericColumns(); !reflect.DeepEqual(got, []string{"age"}) {
		t.Errorf("NumericColumns() = %v", got)
	}

	col, ok := tbl.Lookup("age")
	if !ok || col.Kind != KindNumeric {
		t.Fatalf("Lookup(age) = %+v, %v", col, ok)
	}
	if _, ok := tbl.Lookup("missing"); ok {
		t.Error("Lookup(missing) should not succeed")
	}
}

func TestNonMissing_FiltersMissingValues(t *testing.T) {
	col := numericColumn("v", []string{"1", "", "3"}, []float64{1, 0, 3}, []bool{false, true, false})
	if got := col.NonMissing(); !reflect.DeepEqual(got, []float64{1, 3}) {
		t.Errorf("NonMissing() = %v", got)
	}

	text := Column{Name: "t", Kind: KindText, Values: []string{"a"}}
	if got := text.NonMissing(); got != nil {
		t.Errorf("NonMissing() on text column = %v, want nil", got)
	}
}

func TestPreview_CapsAtRowCount(t *testing.T) {
	tbl, err := New([]Column{
		{Name: "a", Kind: KindText, Values: []string{"1", "2"}},
		{Name: "b", Kind: KindText, Values: []string{"x", "y"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rows := tbl.Preview(5)
	if len(rows) != 2 {
		t.Fatalf("Preview(5) returned %d rows, want 2", len(rows))
	}
	if !reflect.DeepEqual(rows[1], []string{"2", "y"}) {
		t.Errorf("Preview row = %v", rows[1])
	}
}
