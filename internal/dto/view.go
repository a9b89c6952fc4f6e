package dto

import "github.com/noah-isme/emp-portal-api/internal/models"

// FilterRequest carries a full replacement filter state for a view session.
type FilterRequest struct {
	Divisions    []string `json:"divisions"`
	Designations []string `json:"designations"`
	Functions    []string `json:"functions"`
	Genders      []string `json:"genders"`
	Locations    []string `json:"locations"`
	Grades       []string `json:"grades"`
	BloodGroups  []string `json:"bloodGroups"`

	AgeMin int `json:"ageMin" validate:"min=0,max=100"`
	AgeMax int `json:"ageMax" validate:"min=0,max=100"`

	Term  string `json:"term"`
	Field string `json:"field" validate:"omitempty,oneof=name employeeNumber email phone extension"`

	Window string `json:"window" validate:"omitempty,oneof=all 7d 30d"`
}

// FilterState converts the request into the engine's filter state.
func (r FilterRequest) FilterState() models.FilterState {
	return models.FilterState{
		Divisions:    r.Divisions,
		Designations: r.Designations,
		Functions:    r.Functions,
		Genders:      r.Genders,
		Locations:    r.Locations,
		Grades:       r.Grades,
		BloodGroups:  r.BloodGroups,
		AgeMin:       r.AgeMin,
		AgeMax:       r.AgeMax,
		Term:         r.Term,
		Field:        models.SearchField(r.Field),
		Window:       models.TimeWindow(r.Window),
	}.Normalize()
}

// SessionResponse is returned when a view session is opened.
type SessionResponse struct {
	SessionID string          `json:"sessionId"`
	View      string          `json:"view"`
	CacheSize int             `json:"cacheSize"`
	Facets    models.FacetMap `json:"facets"`
	Page      PageResponse    `json:"page"`
}

// PageResponse is the visible slice of the filtered list plus the counts the
// portal shows ("Selected: X / Y" uses the filtered denominator).
type PageResponse struct {
	Employees     []models.Employee `json:"employees"`
	FilteredTotal int               `json:"filteredTotal"`
	VisibleCount  int               `json:"visibleCount"`
	SelectedCount int               `json:"selectedCount"`
	CacheSize     int               `json:"cacheSize"`
}

// ToggleRequest selects or deselects one employee.
type ToggleRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// SelectNextRequest selects the next batch of unselected employees.
type SelectNextRequest struct {
	Count int `json:"count" validate:"required,min=1"`
}

// SelectionResponse reports selection counts after a selection operation.
type SelectionResponse struct {
	SelectedCount int `json:"selectedCount"`
	FilteredTotal int `json:"filteredTotal"`
}

// MutationResponse reports a committed bulk mutation.
type MutationResponse struct {
	OpID     string            `json:"opId"`
	Kind     string            `json:"kind"`
	Count    int               `json:"count"`
	Restored []models.Employee `json:"restored,omitempty"`
}
