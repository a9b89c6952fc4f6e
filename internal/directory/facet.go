package directory

import (
	"sort"
	"unicode"

	"github.com/noah-isme/emp-portal-api/internal/models"
)

// ExtractFacets derives the distinct, sorted value sets offered as filter
// toggles. It is pure and deterministic: the output depends only on the set of
// records, never on fetch arrival order.
func ExtractFacets(records []models.Employee) models.FacetMap {
	divisions := map[string]struct{}{}
	designations := map[string]struct{}{}
	functions := map[string]struct{}{}
	grades := map[string]struct{}{}
	locations := map[string]struct{}{}
	statuses := map[string]struct{}{}
	bloodGroups := map[string]struct{}{}
	floors := map[string]struct{}{}
	workerTypes := map[string]struct{}{}

	for _, e := range records {
		collect(divisions, e.Division)
		collect(designations, e.Designation)
		collect(functions, e.Function)
		collect(grades, e.Grade())
		collect(locations, e.Location)
		collect(statuses, e.Status)
		collect(bloodGroups, e.BloodGroup)
		collect(floors, e.Floor)
		collect(workerTypes, e.WorkerType)
	}

	return models.FacetMap{
		Divisions:    sorted(divisions),
		Designations: sorted(designations),
		Functions:    sorted(functions),
		Grades:       sortedGrades(grades),
		Locations:    sorted(locations),
		Statuses:     sorted(statuses),
		BloodGroups:  sorted(bloodGroups),
		Floors:       sorted(floors),
		WorkerTypes:  sorted(workerTypes),
	}
}

func collect(set map[string]struct{}, value string) {
	if value != "" {
		set[value] = struct{}{}
	}
}

func sorted(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// sortedGrades orders grade tokens with alphabetic tokens before numeric ones,
// lexically within each group: ["B","2","A","1"] -> ["A","B","1","2"].
func sortedGrades(set map[string]struct{}) []string {
	values := sorted(set)
	sort.SliceStable(values, func(i, j int) bool {
		return gradeLess(values[i], values[j])
	})
	return values
}

func gradeLess(a, b string) bool {
	an, bn := isNumericToken(a), isNumericToken(b)
	if an != bn {
		return bn
	}
	return a < b
}

func isNumericToken(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
