/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package workorder

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/NVIDIA/workorder-api/pkg/errors"
)

const (
	licensePlateMaxLen = 20
	descriptionMaxLen  = 255

	// DueDateLayout is the calendar date form accepted for dueDate.
	DueDateLayout = "2006-01-02"
)

// Fields holds the decoded, possibly partial field set of a request body.
// A nil field was absent from the body.
type Fields struct {
	LicensePlate *string
	Description  *string
	Status       *string
	DueDate      *string
}

// Patch converts the supplied fields into a store patch. Call only after
// the fields passed validation.
func (f Fields) Patch() Patch {
	p := Patch{
		LicensePlate: f.LicensePlate,
		Description:  f.Description,
		DueDate:      f.DueDate,
	}
	if f.Status != nil {
		st := Status(*f.Status)
		p.Status = &st
	}
	return p
}

// ValidLicensePlate reports whether s is 1-20 characters after trimming.
func ValidLicensePlate(s string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= 1 && n <= licensePlateMaxLen
}

// ValidDescription reports whether s is 1-255 characters after trimming.
func ValidDescription(s string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= 1 && n <= descriptionMaxLen
}

// ValidDueDate reports whether s parses as a real calendar date in
// YYYY-MM-DD form. Impossible dates (month 13, day 32) are rejected.
func ValidDueDate(s string) bool {
	_, err := time.Parse(DueDateLayout, s)
	return err == nil
}

// ValidateCreate checks a whole-record creation request. licensePlate,
// description, and dueDate are required; status, if present, must be one of
// the enumerated values. The first failing rule wins, in the order
// licensePlate, description, status, dueDate, so a given malformed input
// always yields the same error.
func ValidateCreate(f Fields) *apperrors.StructuredError {
	if f.LicensePlate == nil {
		return missingField("licensePlate")
	}
	if !ValidLicensePlate(*f.LicensePlate) {
		return invalidLicensePlate()
	}

	if f.Description == nil {
		return missingField("description")
	}
	if !ValidDescription(*f.Description) {
		return invalidDescription()
	}

	if f.Status != nil && !Status(*f.Status).IsValid() {
		return invalidStatus()
	}

	if f.DueDate == nil {
		return missingField("dueDate")
	}
	if !ValidDueDate(*f.DueDate) {
		return invalidDueDate()
	}

	return nil
}

// ValidateUpdate checks a partial update. Only supplied fields are checked;
// absent fields impose no constraint. Any supplied field that fails its rule
// aborts the whole update.
func ValidateUpdate(f Fields) *apperrors.StructuredError {
	if f.Status != nil && !Status(*f.Status).IsValid() {
		return invalidStatus()
	}
	if f.DueDate != nil && !ValidDueDate(*f.DueDate) {
		return invalidDueDate()
	}
	if f.LicensePlate != nil && !ValidLicensePlate(*f.LicensePlate) {
		return invalidLicensePlate()
	}
	if f.Description != nil && !ValidDescription(*f.Description) {
		return invalidDescription()
	}
	return nil
}

func missingField(name string) *apperrors.StructuredError {
	return apperrors.New(apperrors.ErrCodeInvalidRequest,
		"Missing required field", name+" is required")
}

func invalidLicensePlate() *apperrors.StructuredError {
	return apperrors.New(apperrors.ErrCodeInvalidRequest,
		"Invalid license plate", "License plate must be 1-20 characters")
}

func invalidDescription() *apperrors.StructuredError {
	return apperrors.New(apperrors.ErrCodeInvalidRequest,
		"Invalid description", "Description must be 1-255 characters")
}

func invalidStatus() *apperrors.StructuredError {
	return apperrors.New(apperrors.ErrCodeInvalidRequest,
		"Invalid status", "Status must be PENDING, IN_PROGRESS, or COMPLETED")
}

func invalidDueDate() *apperrors.StructuredError {
	return apperrors.New(apperrors.ErrCodeInvalidRequest,
		"Invalid date format", "Date must be in YYYY-MM-DD format")
}
