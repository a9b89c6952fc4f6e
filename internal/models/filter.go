package models

// SearchField selects which single field the free-text term is matched against.
type SearchField string

const (
	SearchByName           SearchField = "name"
	SearchByEmployeeNumber SearchField = "employeeNumber"
	SearchByEmail          SearchField = "email"
	SearchByPhone          SearchField = "phone"
	SearchByExtension      SearchField = "extension"
)

// TimeWindow restricts recycled records by their deletion date.
type TimeWindow string

const (
	WindowAll        TimeWindow = "all"
	WindowLast7Days  TimeWindow = "7d"
	WindowLast30Days TimeWindow = "30d"
)

const (
	AgeFloor   = 0
	AgeCeiling = 100
)

// FilterState is the active filter for one view. An empty value set for a
// facet means "no constraint from that facet", never "exclude all".
type FilterState struct {
	Divisions    []string `json:"divisions"`
	Designations []string `json:"designations"`
	Functions    []string `json:"functions"`
	Genders      []string `json:"genders"`
	Locations    []string `json:"locations"`
	Grades       []string `json:"grades"`
	BloodGroups  []string `json:"bloodGroups"`

	AgeMin int `json:"ageMin"`
	AgeMax int `json:"ageMax"`

	Term  string      `json:"term"`
	Field SearchField `json:"field"`

	// Recycle view only; ignored elsewhere.
	Window TimeWindow `json:"window,omitempty"`
}

// DefaultFilterState returns the unconstrained filter.
func DefaultFilterState() FilterState {
	return FilterState{
		AgeMin: AgeFloor,
		AgeMax: AgeCeiling,
		Field:  SearchByName,
		Window: WindowAll,
	}
}

// Normalize clamps the age range into [0,100] with min <= max and fills enum
// zero values, keeping the state total for the predicate engine.
func (f FilterState) Normalize() FilterState {
	if f.AgeMin < AgeFloor {
		f.AgeMin = AgeFloor
	}
	if f.AgeMax <= 0 || f.AgeMax > AgeCeiling {
		f.AgeMax = AgeCeiling
	}
	if f.AgeMin > f.AgeMax {
		f.AgeMin, f.AgeMax = f.AgeMax, f.AgeMin
	}
	if f.Field == "" {
		f.Field = SearchByName
	}
	if f.Window == "" {
		f.Window = WindowAll
	}
	return f
}

// FacetMap holds the sorted, de-duplicated value sets offered as filter
// toggles, derived from the current record cache.
type FacetMap struct {
	Divisions    []string `json:"divisions"`
	Designations []string `json:"designations"`
	Functions    []string `json:"functions"`
	Grades       []string `json:"grades"`
	Locations    []string `json:"locations"`
	Statuses     []string `json:"statuses"`
	BloodGroups  []string `json:"bloodGroups"`
	Floors       []string `json:"floors"`
	WorkerTypes  []string `json:"workerTypes"`
}
