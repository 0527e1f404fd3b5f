/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package workorder

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Patch carries a partial update: nil fields are left untouched, non-nil
// fields replace the stored value. Callers must validate supplied fields
// before applying (see ValidateUpdate); the store itself never holds a
// record that failed validation.
type Patch struct {
	LicensePlate *string
	Description  *string
	Status       *Status
	DueDate      *string
}

// Store is a concurrent in-memory mapping from work order id to record.
// Identifiers are generated by a single atomically-incrementing counter
// starting at 1 and are never reused within the process lifetime.
//
// Each of Create, Update, and Delete is an atomic action on its target
// slot: concurrent operations on different ids proceed independently, and
// concurrent operations on the same id are totally ordered with
// last-applied-wins semantics. No operation performs I/O; the collection
// is destroyed with the process.
type Store struct {
	mu     sync.RWMutex
	orders map[int64]WorkOrder
	nextID atomic.Int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders: make(map[int64]WorkOrder),
	}
}

// Create allocates the next identifier, inserts the record, and returns it.
// Create never fails; the caller is responsible for having validated the
// fields.
func (s *Store) Create(licensePlate, description string, status Status, dueDate string) WorkOrder {
	id := s.nextID.Add(1)
	wo := WorkOrder{
		ID:           id,
		LicensePlate: licensePlate,
		Description:  description,
		Status:       status,
		DueDate:      dueDate,
	}

	s.mu.Lock()
	s.orders[id] = wo
	s.mu.Unlock()

	return wo
}

// Get returns the record for id, if present.
func (s *Store) Get(id int64) (WorkOrder, bool) {
	s.mu.RLock()
	wo, ok := s.orders[id]
	s.mu.RUnlock()
	return wo, ok
}

// List returns a point-in-time snapshot of all records sorted by ascending
// id. Mutations after List returns are not visible in the returned slice.
func (s *Store) List() []WorkOrder {
	s.mu.RLock()
	out := make([]WorkOrder, 0, len(s.orders))
	for _, wo := range s.orders {
		out = append(out, wo)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update applies the non-nil fields of p to the record for id as a single
// atomic replace and returns the updated record. A missing id is reported,
// not created.
func (s *Store) Update(id int64, p Patch) (WorkOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wo, ok := s.orders[id]
	if !ok {
		return WorkOrder{}, false
	}

	if p.LicensePlate != nil {
		wo.LicensePlate = *p.LicensePlate
	}
	if p.Description != nil {
		wo.Description = *p.Description
	}
	if p.Status != nil {
		wo.Status = *p.Status
	}
	if p.DueDate != nil {
		wo.DueDate = *p.DueDate
	}

	s.orders[id] = wo
	return wo, true
}

// Delete removes the record for id and reports whether one existed.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	_, ok := s.orders[id]
	if ok {
		delete(s.orders, id)
	}
	s.mu.Unlock()
	return ok
}

// Len returns the current number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	n := len(s.orders)
	s.mu.RUnlock()
	return n
}
