package orion

import (
	"errors"
	"iter"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Update when no record has the given identifier.
var ErrNotFound = errors.New("record not found")

// Ledger owns the ordered collection of records for one tool instance.
//
// Records keep their insertion order; queries that need chronological
// order sort a copy. The backing slice is never handed out, callers read
// snapshots or go through the mutation operations so the identifier
// uniqueness and validation invariants hold for the collection's lifetime.
type Ledger struct {
	records []Record
	newID   func() string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		records: make([]Record, 0),
		newID:   func() string { return uuid.NewString() },
	}
}

// Len returns the number of records in the collection.
func (l *Ledger) Len() int { return len(l.records) }

// Add validates the candidate, assigns it a fresh identifier and appends
// it to the collection. On rejection the collection is left untouched and
// the returned error is a *ValidationError.
func (l *Ledger) Add(candidate Record) (Record, error) {
	if err := validate(candidate); err != nil {
		return Record{}, err
	}
	candidate.ID = l.newID()
	l.records = append(l.records, candidate)
	return candidate, nil
}

// Update replaces the record with the given identifier by the candidate,
// keeping the identifier and the record's position in the collection.
// It returns ErrNotFound when no record has that identifier, or a
// *ValidationError when the candidate is rejected; state is untouched in
// both cases.
func (l *Ledger) Update(id string, candidate Record) (Record, error) {
	i := l.index(id)
	if i < 0 {
		return Record{}, ErrNotFound
	}
	if err := validate(candidate); err != nil {
		return Record{}, err
	}
	candidate.ID = id
	l.records[i] = candidate
	return candidate, nil
}

// Remove deletes the record with the given identifier. Removing an absent
// identifier is a no-op, not an error.
func (l *Ledger) Remove(id string) (removed bool) {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	return true
}

// Get returns the record with the given identifier.
func (l *Ledger) Get(id string) (Record, bool) {
	i := l.index(id)
	if i < 0 {
		return Record{}, false
	}
	return l.records[i], true
}

// Adopt inserts a record that already carries an identifier, as happens
// when re-importing an export. The record is validated like in Add; a
// blank identifier gets a fresh one, a duplicate identifier is an error.
func (l *Ledger) Adopt(r Record) (Record, error) {
	if err := validate(r); err != nil {
		return Record{}, err
	}
	if r.ID == "" {
		r.ID = l.newID()
	} else if l.index(r.ID) >= 0 {
		return Record{}, errors.New("duplicate record id " + r.ID)
	}
	l.records = append(l.records, r)
	return r, nil
}

// append adds a record without validation. It is only used when decoding
// a stored collection, which may legitimately hold records that would no
// longer pass validation.
func (l *Ledger) append(r Record) {
	l.records = append(l.records, r)
}

// Records returns an iterator that yields each record in insertion order.
func (l *Ledger) Records() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range l.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the collection in insertion order. The copy
// is the caller's to keep; mutating it does not affect the ledger.
func (l *Ledger) Snapshot() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Ledger) index(id string) int {
	for i, r := range l.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
