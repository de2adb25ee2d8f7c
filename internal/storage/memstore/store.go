// Package memstore is the in-memory stand-in backing store used for
// development and tests. It implements the same facade contract as the
// persistent store, with application-level cascade deletes and the same
// count-based numbering, but keeps nothing across process restarts.
package memstore

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/entities"
)

// Store keeps every entity family in a map guarded by one RWMutex. Values
// are deep-copied on the way in and out so callers can never alias internal
// state.
type Store struct {
	mu           sync.RWMutex
	patients     map[uuid.UUID]*entities.Patient
	deliveries   map[uuid.UUID]*entities.Delivery
	reports      map[uuid.UUID]*entities.Report
	invoices     map[uuid.UUID]*entities.Invoice
	appointments map[uuid.UUID]*entities.Appointment
	activities   map[uuid.UUID]*entities.Activity
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		patients:     make(map[uuid.UUID]*entities.Patient),
		deliveries:   make(map[uuid.UUID]*entities.Delivery),
		reports:      make(map[uuid.UUID]*entities.Report),
		invoices:     make(map[uuid.UUID]*entities.Invoice),
		appointments: make(map[uuid.UUID]*entities.Appointment),
		activities:   make(map[uuid.UUID]*entities.Activity),
	}
}

// nextSequentialNumber mirrors the persistent store's count-based scheme,
// including number reuse after a deletion. The caller must hold mu.
func nextSequentialNumber(count int, prefix string, year int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, count+1)
}

const (
	reportNumberPrefix  = "REF"
	invoiceNumberPrefix = "INV"
)
