package workorder

import (
	"net/url"
	"strings"
)

// Filter holds the recognized collection query predicates. Nil predicates
// are not applied; a record is kept only when every supplied predicate
// matches (conjunction).
type Filter struct {
	Status       *string
	LicensePlate *string
	DueDate      *string
}

// FilterFromQuery extracts the recognized filter keys from a parsed query
// string. Unrecognized keys are ignored.
func FilterFromQuery(q url.Values) Filter {
	var f Filter
	if q.Has("status") {
		v := q.Get("status")
		f.Status = &v
	}
	if q.Has("licensePlate") {
		v := q.Get("licensePlate")
		f.LicensePlate = &v
	}
	if q.Has("dueDate") {
		v := q.Get("dueDate")
		f.DueDate = &v
	}
	return f
}

// Matches reports whether wo satisfies every supplied predicate. Status and
// licensePlate compare case-insensitively, dueDate by exact string equality.
func (f Filter) Matches(wo WorkOrder) bool {
	if f.Status != nil && !strings.EqualFold(string(wo.Status), *f.Status) {
		return false
	}
	if f.LicensePlate != nil && !strings.EqualFold(wo.LicensePlate, *f.LicensePlate) {
		return false
	}
	if f.DueDate != nil && wo.DueDate != *f.DueDate {
		return false
	}
	return true
}
