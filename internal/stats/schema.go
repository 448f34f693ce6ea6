package stats

// Category identifies one statistical category on a box score or stat sheet
type Category string

const (
	CategoryPassing    Category = "passing"
	CategoryRushing    Category = "rushing"
	CategoryReceiving  Category = "receiving"
	CategoryBlocking   Category = "blocking"
	CategoryDefense    Category = "defense"
	CategoryKicking    Category = "kicking"
	CategoryPunting    Category = "punting"
	CategoryKickReturn Category = "kickReturn"
	CategoryPuntReturn Category = "puntReturn"
)

// Categories lists every category in display order
func Categories() []Category {
	return []Category{
		CategoryPassing,
		CategoryRushing,
		CategoryReceiving,
		CategoryBlocking,
		CategoryDefense,
		CategoryKicking,
		CategoryPunting,
		CategoryKickReturn,
		CategoryPuntReturn,
	}
}

// CategorySchema declares the canonical raw fields of one category and how
// repeated occurrences combine: summed counting fields vs. maxed "long"
// fields. The rule is fixed per field per category and applies identically
// to box-score and manual data.
type CategorySchema struct {
	SumFields []string
	MaxFields []string
}

// IsSum reports whether field combines by summation
func (s CategorySchema) IsSum(field string) bool {
	for _, f := range s.SumFields {
		if f == field {
			return true
		}
	}
	return false
}

// IsMax reports whether field combines by maximum
func (s CategorySchema) IsMax(field string) bool {
	for _, f := range s.MaxFields {
		if f == field {
			return true
		}
	}
	return false
}

var schemas = map[Category]CategorySchema{
	CategoryPassing: {
		SumFields: []string{"cmp", "att", "yds", "td", "int"},
		MaxFields: []string{"lng"},
	},
	CategoryRushing: {
		SumFields: []string{"car", "yds", "td", "fum"},
		MaxFields: []string{"lng"},
	},
	CategoryReceiving: {
		SumFields: []string{"rec", "yds", "td", "drops"},
		MaxFields: []string{"lng"},
	},
	CategoryBlocking: {
		SumFields: []string{"pancakes", "sacksAllowed"},
	},
	CategoryDefense: {
		SumFields: []string{"solo", "asst", "tfl", "sacks", "int", "td", "ff", "fr", "pd", "safeties"},
	},
	CategoryKicking: {
		SumFields: []string{"fgm", "fga", "xpm", "xpa"},
		MaxFields: []string{"lng"},
	},
	CategoryPunting: {
		SumFields: []string{"punts", "yds", "in20", "tb"},
		MaxFields: []string{"lng"},
	},
	CategoryKickReturn: {
		SumFields: []string{"ret", "yds", "td"},
		MaxFields: []string{"lng"},
	},
	CategoryPuntReturn: {
		SumFields: []string{"ret", "yds", "td"},
		MaxFields: []string{"lng"},
	},
}

// FieldsFor returns the canonical field schema for a category. Unknown
// categories return an empty schema, which drops every field on merge.
func FieldsFor(cat Category) CategorySchema {
	return schemas[cat]
}

// boxFieldNames translates box-score field names to canonical names.
// Box scores are entered per game with spelled-out field keys.
var boxFieldNames = map[Category]map[string]string{
	CategoryPassing: {
		"completions":   "cmp",
		"attempts":      "att",
		"yards":         "yds",
		"touchdowns":    "td",
		"interceptions": "int",
		"longest":       "lng",
	},
	CategoryRushing: {
		"carries":    "car",
		"yards":      "yds",
		"touchdowns": "td",
		"fumbles":    "fum",
		"longest":    "lng",
	},
	CategoryReceiving: {
		"receptions": "rec",
		"yards":      "yds",
		"touchdowns": "td",
		"drops":      "drops",
		"longest":    "lng",
	},
	CategoryBlocking: {
		"pancakes":     "pancakes",
		"sacksAllowed": "sacksAllowed",
	},
	CategoryDefense: {
		"soloTackles":      "solo",
		"assistedTackles":  "asst",
		"tacklesForLoss":   "tfl",
		"sacks":            "sacks",
		"interceptions":    "int",
		"touchdowns":       "td",
		"forcedFumbles":    "ff",
		"fumbleRecoveries": "fr",
		"deflections":      "pd",
		"safeties":         "safeties",
	},
	CategoryKicking: {
		"fgMade":      "fgm",
		"fgAttempted": "fga",
		"xpMade":      "xpm",
		"xpAttempted": "xpa",
		"longest":     "lng",
	},
	CategoryPunting: {
		"punts":      "punts",
		"yards":      "yds",
		"inside20":   "in20",
		"touchbacks": "tb",
		"longest":    "lng",
	},
	CategoryKickReturn: {
		"returns":    "ret",
		"yards":      "yds",
		"touchdowns": "td",
		"longest":    "lng",
	},
	CategoryPuntReturn: {
		"returns":    "ret",
		"yards":      "yds",
		"touchdowns": "td",
		"longest":    "lng",
	},
}

// manualFieldNames translates the manual stat sheet short-field scheme to
// canonical names. Sheets are typed in by hand at season end and use a
// compact key set distinct from the box-score scheme.
var manualFieldNames = map[Category]map[string]string{
	CategoryPassing: {
		"cmp": "cmp", "att": "att", "yds": "yds", "tds": "td", "ints": "int", "lng": "lng",
	},
	CategoryRushing: {
		"car": "car", "yds": "yds", "tds": "td", "fum": "fum", "lng": "lng",
	},
	CategoryReceiving: {
		"rec": "rec", "yds": "yds", "tds": "td", "drp": "drops", "lng": "lng",
	},
	CategoryBlocking: {
		"pan": "pancakes", "sak": "sacksAllowed",
	},
	CategoryDefense: {
		"solo": "solo", "ast": "asst", "tfl": "tfl", "sak": "sacks", "int": "int",
		"tds": "td", "ff": "ff", "fr": "fr", "pd": "pd", "sfty": "safeties",
	},
	CategoryKicking: {
		"fgm": "fgm", "fga": "fga", "xpm": "xpm", "xpa": "xpa", "lng": "lng",
	},
	CategoryPunting: {
		"pnt": "punts", "yds": "yds", "i20": "in20", "tb": "tb", "lng": "lng",
	},
	CategoryKickReturn: {
		"ret": "ret", "yds": "yds", "tds": "td", "lng": "lng",
	},
	CategoryPuntReturn: {
		"ret": "ret", "yds": "yds", "tds": "td", "lng": "lng",
	},
}

// TranslateBox converts a box-score stat line into canonical field names.
// Unknown fields are dropped, unparsable values coerce to zero.
func TranslateBox(cat Category, fields map[string]any) map[string]float64 {
	return translate(boxFieldNames[cat], fields)
}

// TranslateManual converts a manual short-field stat line into canonical
// field names. Unknown fields are dropped, unparsable values coerce to zero.
func TranslateManual(cat Category, fields map[string]any) map[string]float64 {
	return translate(manualFieldNames[cat], fields)
}

func translate(names map[string]string, fields map[string]any) map[string]float64 {
	out := make(map[string]float64, len(fields))
	for key, value := range fields {
		canonical, ok := names[key]
		if !ok {
			continue
		}
		out[canonical] = CoerceFloat(value)
	}
	return out
}
