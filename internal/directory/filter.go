// Package directory implements the faceted query, selection, and bulk-mutation
// engine shared by the directory, recycle-bin, and intercom views. Everything
// except the mutation coordinator is pure and synchronous: facet extraction,
// filtering, selection, and pagination are total functions that never suspend,
// so callers always observe one coherent snapshot of the record cache.
package directory

import (
	"strings"
	"time"

	"github.com/noah-isme/emp-portal-api/internal/models"
)

const dateLayout = "2006-01-02"

// Age computes whole years between birthDate (YYYY-MM-DD) and today,
// exact-day inclusive: the age increments on the birthday itself. Unparseable
// dates degrade to zero rather than failing.
func Age(birthDate string, today time.Time) int {
	born, err := time.Parse(dateLayout, strings.TrimSpace(birthDate))
	if err != nil {
		return 0
	}
	years := today.Year() - born.Year()
	if today.Month() < born.Month() ||
		(today.Month() == born.Month() && today.Day() < born.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// daysSince is the calendar-day difference between a YYYY-MM-DD date and now,
// ignoring time of day. It shares the date-diff convention of Age.
func daysSince(date string, now time.Time) (int, bool) {
	then, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(today.Sub(then).Hours() / 24), true
}

// withinWindow reports whether a recycled record's deletion date falls inside
// the selected time window.
func withinWindow(deletedOn string, window models.TimeWindow, now time.Time) bool {
	switch window {
	case "", models.WindowAll:
		return true
	}
	days, ok := daysSince(deletedOn, now)
	if !ok {
		// Records without a parseable deletion date only show under "all".
		return false
	}
	switch window {
	case models.WindowLast7Days:
		return days >= 0 && days <= 7
	case models.WindowLast30Days:
		return days >= 0 && days <= 30
	default:
		return true
	}
}

func searchValue(e models.Employee, field models.SearchField) string {
	switch field {
	case models.SearchByEmployeeNumber:
		return e.EmployeeNumber
	case models.SearchByEmail:
		return e.Email
	case models.SearchByPhone:
		return e.Phone
	case models.SearchByExtension:
		return e.IntercomExtension
	default:
		return e.Name
	}
}

func inSet(value string, set []string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// Matches evaluates one record against the filter. Constraints combine with
// logical AND across facets and logical OR within a facet's selected set; the
// first failing constraint short-circuits.
func Matches(e models.Employee, f models.FilterState, now time.Time) bool {
	age := Age(e.BirthDate, now)
	if age < f.AgeMin || age > f.AgeMax {
		return false
	}
	if len(f.Divisions) > 0 && !inSet(e.Division, f.Divisions) {
		return false
	}
	if len(f.Designations) > 0 && !inSet(e.Designation, f.Designations) {
		return false
	}
	if len(f.Functions) > 0 && !inSet(e.Function, f.Functions) {
		return false
	}
	if len(f.Genders) > 0 && !inSet(e.Gender, f.Genders) {
		return false
	}
	if len(f.Locations) > 0 && !inSet(e.Location, f.Locations) {
		return false
	}
	if len(f.Grades) > 0 && !inSet(e.Grade(), f.Grades) {
		return false
	}
	if len(f.BloodGroups) > 0 && !inSet(e.BloodGroup, f.BloodGroups) {
		return false
	}
	if !withinWindow(e.DeletedOn, f.Window, now) {
		return false
	}
	if term := strings.TrimSpace(f.Term); term != "" {
		value := searchValue(e, f.Field)
		if !strings.Contains(strings.ToLower(value), strings.ToLower(term)) {
			return false
		}
	}
	return true
}

// ApplyFilter returns the records passing the filter, preserving the original
// relative order of the input (stable filter, no re-sort).
func ApplyFilter(records []models.Employee, f models.FilterState, now time.Time) []models.Employee {
	f = f.Normalize()
	filtered := make([]models.Employee, 0, len(records))
	for _, e := range records {
		if Matches(e, f, now) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
