/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package workorder

import (
	"net/url"
	"testing"
)

func TestFilterFromQuery(t *testing.T) {
	q, err := url.ParseQuery("status=PENDING&licensePlate=SB-XY-123&sort=asc")
	if err != nil {
		t.Fatal(err)
	}

	f := FilterFromQuery(q)
	if f.Status == nil || *f.Status != "PENDING" {
		t.Errorf("expected status PENDING, got %v", f.Status)
	}
	if f.LicensePlate == nil || *f.LicensePlate != "SB-XY-123" {
		t.Errorf("expected licensePlate SB-XY-123, got %v", f.LicensePlate)
	}
	if f.DueDate != nil {
		t.Error("dueDate was not supplied, expected nil predicate")
	}
}

func TestFilterMatches(t *testing.T) {
	wo := WorkOrder{
		ID:           1,
		LicensePlate: "SB-XY-123",
		Description:  "Bremsscheiben wechseln",
		Status:       StatusPending,
		DueDate:      "2025-10-15",
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "no predicates", filter: Filter{}, want: true},
		{name: "status exact", filter: Filter{Status: strPtr("PENDING")}, want: true},
		{name: "status case-insensitive", filter: Filter{Status: strPtr("pending")}, want: true},
		{name: "status mismatch", filter: Filter{Status: strPtr("COMPLETED")}, want: false},
		{name: "plate case-insensitive", filter: Filter{LicensePlate: strPtr("sb-xy-123")}, want: true},
		{name: "plate mismatch", filter: Filter{LicensePlate: strPtr("KL-AA-007")}, want: false},
		{name: "due date exact", filter: Filter{DueDate: strPtr("2025-10-15")}, want: true},
		{name: "due date mismatch", filter: Filter{DueDate: strPtr("2025-10-16")}, want: false},
		{
			name: "conjunction all match",
			filter: Filter{
				Status:       strPtr("PENDING"),
				LicensePlate: strPtr("SB-XY-123"),
				DueDate:      strPtr("2025-10-15"),
			},
			want: true,
		},
		{
			name: "conjunction one mismatch",
			filter: Filter{
				Status:       strPtr("PENDING"),
				LicensePlate: strPtr("SB-XY-123"),
				DueDate:      strPtr("2024-01-01"),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(wo); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
