/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package workorder

import (
	"strings"
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func validCreateFields() Fields {
	return Fields{
		LicensePlate: strPtr("SB-XY-123"),
		Description:  strPtr("Bremsscheiben wechseln"),
		Status:       strPtr("PENDING"),
		DueDate:      strPtr("2025-10-15"),
	}
}

func TestValidLicensePlate(t *testing.T) {
	tests := []struct {
		name  string
		plate string
		want  bool
	}{
		{name: "typical", plate: "SB-XY-123", want: true},
		{name: "single char", plate: "A", want: true},
		{name: "max length", plate: strings.Repeat("A", 20), want: true},
		{name: "too long", plate: strings.Repeat("A", 21), want: false},
		{name: "empty", plate: "", want: false},
		{name: "whitespace only", plate: "   ", want: false},
		{name: "padded to limit", plate: "  " + strings.Repeat("A", 20) + "  ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidLicensePlate(tt.plate); got != tt.want {
				t.Errorf("ValidLicensePlate(%q) = %v, want %v", tt.plate, got, tt.want)
			}
		})
	}
}

func TestValidDescription(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want bool
	}{
		{name: "typical", desc: "Ölwechsel", want: true},
		{name: "max length", desc: strings.Repeat("x", 255), want: true},
		{name: "too long", desc: strings.Repeat("x", 256), want: false},
		{name: "empty", desc: "", want: false},
		{name: "whitespace only", desc: " \t ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDescription(tt.desc); got != tt.want {
				t.Errorf("ValidDescription(%q) = %v, want %v", tt.desc, got, tt.want)
			}
		})
	}
}

func TestValidDueDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{name: "valid", date: "2025-10-15", want: true},
		{name: "leap day", date: "2024-02-29", want: true},
		{name: "impossible month", date: "2025-13-01", want: false},
		{name: "impossible day", date: "2025-01-32", want: false},
		{name: "non-leap february 29", date: "2025-02-29", want: false},
		{name: "wrong separator", date: "2025/10/15", want: false},
		{name: "missing day", date: "2025-10", want: false},
		{name: "empty", date: "", want: false},
		{name: "garbage", date: "tomorrow", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDueDate(tt.date); got != tt.want {
				t.Errorf("ValidDueDate(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Fields)
		wantDetail string
	}{
		{
			name:   "all fields valid",
			mutate: func(f *Fields) {},
		},
		{
			name:   "status absent defaults later",
			mutate: func(f *Fields) { f.Status = nil },
		},
		{
			name:       "missing license plate",
			mutate:     func(f *Fields) { f.LicensePlate = nil },
			wantDetail: "licensePlate is required",
		},
		{
			name:       "missing description",
			mutate:     func(f *Fields) { f.Description = nil },
			wantDetail: "description is required",
		},
		{
			name:       "missing due date",
			mutate:     func(f *Fields) { f.DueDate = nil },
			wantDetail: "dueDate is required",
		},
		{
			name:       "license plate too long",
			mutate:     func(f *Fields) { f.LicensePlate = strPtr(strings.Repeat("A", 21)) },
			wantDetail: "License plate must be 1-20 characters",
		},
		{
			name:       "invalid status",
			mutate:     func(f *Fields) { f.Status = strPtr("DONE") },
			wantDetail: "Status must be PENDING, IN_PROGRESS, or COMPLETED",
		},
		{
			name:       "lowercase status rejected",
			mutate:     func(f *Fields) { f.Status = strPtr("pending") },
			wantDetail: "Status must be PENDING, IN_PROGRESS, or COMPLETED",
		},
		{
			name:       "invalid due date",
			mutate:     func(f *Fields) { f.DueDate = strPtr("15.10.2025") },
			wantDetail: "Date must be in YYYY-MM-DD format",
		},
		{
			name: "license plate reported before description",
			mutate: func(f *Fields) {
				f.LicensePlate = nil
				f.Description = nil
			},
			wantDetail: "licensePlate is required",
		},
		{
			name: "status reported before due date",
			mutate: func(f *Fields) {
				f.Status = strPtr("DONE")
				f.DueDate = strPtr("bad")
			},
			wantDetail: "Status must be PENDING, IN_PROGRESS, or COMPLETED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validCreateFields()
			tt.mutate(&f)

			err := ValidateCreate(f)
			if tt.wantDetail == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Detail != tt.wantDetail {
				t.Errorf("expected detail %q, got %q", tt.wantDetail, err.Detail)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name       string
		fields     Fields
		wantDetail string
	}{
		{
			name:   "empty update is valid",
			fields: Fields{},
		},
		{
			name:   "single valid field",
			fields: Fields{Status: strPtr("COMPLETED")},
		},
		{
			name:       "invalid status",
			fields:     Fields{Status: strPtr("FINISHED")},
			wantDetail: "Status must be PENDING, IN_PROGRESS, or COMPLETED",
		},
		{
			name:       "invalid due date",
			fields:     Fields{DueDate: strPtr("2025-13-40")},
			wantDetail: "Date must be in YYYY-MM-DD format",
		},
		{
			name:       "empty license plate",
			fields:     Fields{LicensePlate: strPtr("  ")},
			wantDetail: "License plate must be 1-20 characters",
		},
		{
			name:       "description too long",
			fields:     Fields{Description: strPtr(strings.Repeat("x", 256))},
			wantDetail: "Description must be 1-255 characters",
		},
		{
			name: "status checked before license plate",
			fields: Fields{
				Status:       strPtr("bogus"),
				LicensePlate: strPtr(""),
			},
			wantDetail: "Status must be PENDING, IN_PROGRESS, or COMPLETED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdate(tt.fields)
			if tt.wantDetail == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Detail != tt.wantDetail {
				t.Errorf("expected detail %q, got %q", tt.wantDetail, err.Detail)
			}
		})
	}
}

func TestFieldsPatch(t *testing.T) {
	f := Fields{
		Status:  strPtr("IN_PROGRESS"),
		DueDate: strPtr("2025-09-01"),
	}
	p := f.Patch()

	if p.LicensePlate != nil || p.Description != nil {
		t.Error("absent fields must stay nil in patch")
	}
	if p.Status == nil || *p.Status != StatusInProgress {
		t.Errorf("expected status IN_PROGRESS, got %v", p.Status)
	}
	if p.DueDate == nil || *p.DueDate != "2025-09-01" {
		t.Errorf("expected due date 2025-09-01, got %v", p.DueDate)
	}
}
