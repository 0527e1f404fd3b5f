/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package workorder

import "github.com/NVIDIA/workorder-api/pkg/codec"

// Status is the lifecycle state of a work order.
type Status string

const (
	// StatusPending is the default state for new work orders.
	StatusPending Status = "PENDING"
	// StatusInProgress marks a work order currently being serviced.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusCompleted marks a finished work order.
	StatusCompleted Status = "COMPLETED"
)

// IsValid reports whether s is one of the three enumerated values.
// The comparison is case-sensitive.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// SupportedStatuses returns the enumerated status values for usage strings
// and error details.
func SupportedStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// WorkOrder is the sole entity of this service. ID is assigned by the store
// at creation and immutable thereafter; the remaining four fields are
// replaceable through partial updates. Every stored instance satisfies all
// field constraints (see Validate*).
type WorkOrder struct {
	ID           int64  `json:"id"`
	LicensePlate string `json:"licensePlate"`
	Description  string `json:"description"`
	Status       Status `json:"status"`
	DueDate      string `json:"dueDate"`
}

// Encode renders the record as a fixed-field JSON object literal using the
// boundary codec. Backslash and quote characters in string fields are
// escaped; field order is fixed.
func (wo WorkOrder) Encode() string {
	o := &codec.Object{}
	return o.Int("id", wo.ID).
		Str("licensePlate", wo.LicensePlate).
		Str("description", wo.Description).
		Str("status", string(wo.Status)).
		Str("dueDate", wo.DueDate).
		Build()
}

// EncodeList renders a snapshot of records as a JSON array literal.
// An empty snapshot encodes to "[]".
func EncodeList(orders []WorkOrder) string {
	items := make([]string, 0, len(orders))
	for _, wo := range orders {
		items = append(items, wo.Encode())
	}
	return codec.Array(items)
}
