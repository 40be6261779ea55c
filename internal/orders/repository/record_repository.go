package repository

import (
	"fmt"
	"strings"
	"sync"

	"coletas/internal/domain"
	"coletas/internal/errors"
)

// MemoryRecordRepository owns the ordered record collection, most recent
// first. Records never leave the repository except as copies, so mutation
// only happens through Update and CloseOutDay.
//
// The tool is single-operator by design; the lock only keeps the component
// safe when embedded behind something concurrent.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records []domain.OrderRecord
}

func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{}
}

// Insert assigns a fresh ID and prepends the record. IDs are strictly
// greater than any existing ID (1 when empty) and never reused while the
// process lives, since records are never deleted.
func (r *MemoryRecordRepository) Insert(rec domain.OrderRecord) domain.OrderRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID()
	r.records = append([]domain.OrderRecord{rec}, r.records...)
	return rec
}

func (r *MemoryRecordRepository) nextID() uint {
	var max uint
	for _, rec := range r.records {
		if rec.ID > max {
			max = rec.ID
		}
	}
	return max + 1
}

func (r *MemoryRecordRepository) FindByID(id uint) (domain.OrderRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.OrderRecord{}, errors.NewNotFoundError(fmt.Sprintf("record with id %d not found", id))
}

// Update merges the set fields of the patch into the record with the given
// ID. Unknown IDs produce a NotFoundError and leave the collection untouched.
func (r *MemoryRecordRepository) Update(id uint, patch domain.RecordPatch) (domain.OrderRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			patch.ApplyTo(&r.records[i])
			return r.records[i], nil
		}
	}
	return domain.OrderRecord{}, errors.NewNotFoundError(fmt.Sprintf("record with id %d not found", id))
}

// List returns copies of the records matching every set filter criterion,
// preserving the most-recent-first order.
func (r *MemoryRecordRepository) List(filter domain.RecordFilter) []domain.OrderRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := foldForSearch(filter.Search)

	out := make([]domain.OrderRecord, 0, len(r.records))
	for _, rec := range r.records {
		if filter.DateFrom != "" && rec.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && rec.Date > filter.DateTo {
			continue
		}
		if filter.Store != "" && filter.Store != domain.AllStores && rec.Store != filter.Store {
			continue
		}
		if search != "" && !matchesSearch(rec, search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesSearch(rec domain.OrderRecord, folded string) bool {
	return strings.Contains(foldForSearch(rec.OrderNumber), folded) ||
		strings.Contains(foldForSearch(rec.InvoiceNumber), folded)
}

// CloseOutDay cancels every record of the given date that was not collected,
// assuming the merchandise did not return, and appends an audit fragment to
// the note. Returns how many records changed. There is no undo; the sweep is
// a deliberate manual end-of-day action. Records already cancelled on that
// date match again on a second sweep; the sweep keys on status, not notes.
func (r *MemoryRecordRepository) CloseOutDay(date string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for i := range r.records {
		rec := &r.records[i]
		if rec.Date != date || rec.OrderStatus == domain.OrderStatusCollected {
			continue
		}
		rec.OrderStatus = domain.OrderStatusCancelled
		rec.MerchandiseReversed = true
		rec.Note = appendNote(rec.Note, fmt.Sprintf("Cancelled - not delivered on day %s", date))
		changed++
	}
	return changed
}

func appendNote(existing, fragment string) string {
	if existing == "" || existing == domain.EmptyNote {
		return fragment
	}
	return existing + " | " + fragment
}
