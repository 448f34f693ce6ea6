package stats

import "testing"

func TestFieldsFor_MergeRulesFixed(t *testing.T) {
	// Long fields are max, everything else sums; the rule is identical for
	// both data sources because both translate into the same schema.
	for _, cat := range Categories() {
		schema := FieldsFor(cat)
		if len(schema.SumFields) == 0 {
			t.Errorf("%s: no sum fields declared", cat)
		}
		for _, f := range schema.MaxFields {
			if schema.IsSum(f) {
				t.Errorf("%s: field %q declared both sum and max", cat, f)
			}
		}
	}

	if !FieldsFor(CategoryPassing).IsMax("lng") {
		t.Error("passing lng must merge by max")
	}
	if !FieldsFor(CategoryPassing).IsSum("yds") {
		t.Error("passing yds must merge by sum")
	}
	if len(FieldsFor(CategoryBlocking).MaxFields) != 0 {
		t.Error("blocking has no long fields")
	}
}

func TestFieldsFor_UnknownCategoryEmpty(t *testing.T) {
	schema := FieldsFor(Category("bowling"))
	if len(schema.SumFields) != 0 || len(schema.MaxFields) != 0 {
		t.Error("unknown category must yield an empty schema")
	}
}

func TestTranslateBox(t *testing.T) {
	got := TranslateBox(CategoryPassing, map[string]any{
		"completions":   20,
		"attempts":      30,
		"yards":         300.0,
		"touchdowns":    "3",
		"interceptions": 1,
		"longest":       58,
		"bogus":         7,
	})

	want := map[string]float64{"cmp": 20, "att": 30, "yds": 300, "td": 3, "int": 1, "lng": 58}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
	if _, ok := got["bogus"]; ok {
		t.Error("unknown box field must be dropped")
	}
}

func TestTranslateManual(t *testing.T) {
	got := TranslateManual(CategoryReceiving, map[string]any{
		"rec": 40, "yds": 520, "tds": 6, "drp": 2, "lng": 61,
	})

	want := map[string]float64{"rec": 40, "yds": 520, "td": 6, "drops": 2, "lng": 61}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestTranslateSchemesAgreeOnCanonicalFields(t *testing.T) {
	// Both sources must land on the same canonical keys so the merge rule
	// applies identically regardless of origin.
	for _, cat := range Categories() {
		schema := FieldsFor(cat)
		known := make(map[string]bool)
		for _, f := range schema.SumFields {
			known[f] = true
		}
		for _, f := range schema.MaxFields {
			known[f] = true
		}

		for name, canonical := range boxFieldNames[cat] {
			if !known[canonical] {
				t.Errorf("%s: box field %q maps to undeclared canonical %q", cat, name, canonical)
			}
		}
		for name, canonical := range manualFieldNames[cat] {
			if !known[canonical] {
				t.Errorf("%s: manual field %q maps to undeclared canonical %q", cat, name, canonical)
			}
		}
	}
}

func TestCoerceFloat(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", " 42 ", 42},
		{"garbage string", "a lot", 0},
		{"nil", nil, 0},
		{"bool", true, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceFloat(tc.in); got != tc.want {
				t.Errorf("CoerceFloat(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
