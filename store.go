package pocketplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"
)

// Persisted state lives in an external key-value store. Values are
// JSON-encoded UTF-8 text, except the scalar settings which are stored as
// plain strings.
const (
	KeyBalance          = "balance"
	KeyStartDate        = "startDate"
	KeyRecurringBills   = "recurringBills"
	KeyRecurringIncome  = "recurringIncome"
	KeyOneTimeSpends    = "oneTimeSpends"
	KeyOneTimeIncome    = "oneTimeIncome"
	KeyDotRangeYears    = "dotRangeYears"
	KeyCurrency         = "currency"
	KeyRemindDaysBefore = "reminderDaysBefore"
)

// Settings defaults and bounds.
const (
	defaultDotRangeYears    = 2
	maxDotRangeYears        = 10
	defaultRemindDaysBefore = 1
)

// Store is the key-value persistence collaborator. The engine only ever
// reads a snapshot through it before a projection begins and writes whole
// values back; it holds no transactional expectations.
type Store interface {
	// Get returns the value for key, and whether the key exists.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore is a Store backed by a single JSON object file. Writes go
// through a temp file and a rename so a crash never leaves a half-written
// store behind.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// OpenFileStore opens (or lazily creates) the store at path. A missing file
// is an empty store, not an error.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read store %q: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.values); err != nil {
		return nil, fmt.Errorf("format error in store %q: %w", path, err)
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flush()
}

// flush writes the whole store back. Callers must hold the mutex.
func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("cannot create store directory: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("cannot write store %q: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}

var _ Store = (*FileStore)(nil)

// State is a decoded snapshot of everything the engine consumes. The engine
// never mutates it; callers pass its collections by value into each call.
type State struct {
	Anchor           Anchor
	RecurringIncome  []RecurringItem
	RecurringBills   []RecurringItem
	OneTimeIncome    []OneTimeItem
	OneTimeSpends    []OneTimeItem
	DotRangeYears    int
	Currency         string
	RemindDaysBefore int
}

// MarkingRange is the default marking-index window: from the tracking start
// to DotRangeYears years past it.
func (st *State) MarkingRange() Range {
	return Range{From: st.Anchor.TrackingStart, To: st.Anchor.TrackingStart.AddYear(st.DotRangeYears)}
}

// LoadState reads and decodes the full snapshot from the store.
//
// Malformed persisted data is recovered locally, never propagated: an
// unparseable collection becomes empty, an unparseable balance becomes zero,
// a missing or unparseable start date becomes today (and is written back so
// the anchor stays stable across runs), and individual items that fail to
// decode or validate are dropped. Every substitution logs a warning.
func LoadState(s Store) (*State, error) {
	st := &State{
		DotRangeYears:    defaultDotRangeYears,
		Currency:         DefaultCurrency,
		RemindDaysBefore: defaultRemindDaysBefore,
	}

	if raw, ok, err := s.Get(KeyBalance); err != nil {
		return nil, err
	} else if ok {
		balance, err := decimal.NewFromString(raw)
		if err != nil {
			log.Printf("warning: unreadable %s %q, using zero: %v", KeyBalance, raw, err)
			balance = decimal.Zero
		}
		st.Anchor.InitialBalance = balance
	}

	raw, ok, err := s.Get(KeyStartDate)
	if err != nil {
		return nil, err
	}
	start, perr := ParseDate(raw)
	switch {
	case !ok:
		start = Today()
	case perr != nil:
		log.Printf("warning: unreadable %s %q, using today: %v", KeyStartDate, raw, perr)
		start = Today()
	}
	st.Anchor.TrackingStart = start
	if !ok || perr != nil {
		if err := s.Set(KeyStartDate, start.String()); err != nil {
			return nil, fmt.Errorf("cannot persist %s: %w", KeyStartDate, err)
		}
	}

	st.RecurringBills = decodeRecurringItems(s, KeyRecurringBills)
	st.RecurringIncome = decodeRecurringItems(s, KeyRecurringIncome)
	st.OneTimeSpends = decodeOneTimeItems(s, KeyOneTimeSpends)
	st.OneTimeIncome = decodeOneTimeItems(s, KeyOneTimeIncome)

	if raw, ok, err := s.Get(KeyDotRangeYears); err != nil {
		return nil, err
	} else if ok {
		years, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			log.Printf("warning: unreadable %s %q, using %d: %v", KeyDotRangeYears, raw, defaultDotRangeYears, err)
		case years < 0 || years > maxDotRangeYears:
			log.Printf("warning: %s %d out of range [0,%d], using %d", KeyDotRangeYears, years, maxDotRangeYears, defaultDotRangeYears)
		default:
			st.DotRangeYears = years
		}
	}

	if raw, ok, err := s.Get(KeyCurrency); err != nil {
		return nil, err
	} else if ok {
		if err := ValidateCurrency(raw); err != nil {
			log.Printf("warning: %v, using %s", err, DefaultCurrency)
		} else {
			st.Currency = raw
		}
	}

	if raw, ok, err := s.Get(KeyRemindDaysBefore); err != nil {
		return nil, err
	} else if ok {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			log.Printf("warning: unreadable %s %q, using %d", KeyRemindDaysBefore, raw, defaultRemindDaysBefore)
		} else {
			st.RemindDaysBefore = days
		}
	}

	return st, nil
}

// SaveState writes the full snapshot back to the store.
func SaveState(s Store, st *State) error {
	scalars := map[string]string{
		KeyBalance:          st.Anchor.InitialBalance.String(),
		KeyStartDate:        st.Anchor.TrackingStart.String(),
		KeyDotRangeYears:    strconv.Itoa(st.DotRangeYears),
		KeyCurrency:         st.Currency,
		KeyRemindDaysBefore: strconv.Itoa(st.RemindDaysBefore),
	}
	for key, value := range scalars {
		if err := s.Set(key, value); err != nil {
			return fmt.Errorf("cannot persist %s: %w", key, err)
		}
	}
	collections := map[string]any{
		KeyRecurringBills:  st.RecurringBills,
		KeyRecurringIncome: st.RecurringIncome,
		KeyOneTimeSpends:   st.OneTimeSpends,
		KeyOneTimeIncome:   st.OneTimeIncome,
	}
	for key, items := range collections {
		raw, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("cannot encode %s: %w", key, err)
		}
		if err := s.Set(key, string(raw)); err != nil {
			return fmt.Errorf("cannot persist %s: %w", key, err)
		}
	}
	return nil
}

// decodeRecurringItems decodes one item collection, recovering per item: a
// row with a bad date, an unknown interval, or a failed invariant is dropped
// with a warning while the rest of the collection survives.
func decodeRecurringItems(s Store, key string) []RecurringItem {
	var items []RecurringItem
	for _, row := range collectionRows(s, key) {
		var it RecurringItem
		if err := json.Unmarshal(row, &it); err != nil {
			log.Printf("warning: %s: skipping item %s: %v", key, row, err)
			continue
		}
		if err := it.Validate(); err != nil {
			log.Printf("warning: %s: skipping item: %v", key, err)
			continue
		}
		items = append(items, it)
	}
	return items
}

func decodeOneTimeItems(s Store, key string) []OneTimeItem {
	var items []OneTimeItem
	for _, row := range collectionRows(s, key) {
		var it OneTimeItem
		if err := json.Unmarshal(row, &it); err != nil {
			log.Printf("warning: %s: skipping item %s: %v", key, row, err)
			continue
		}
		if err := it.Validate(); err != nil {
			log.Printf("warning: %s: skipping item: %v", key, err)
			continue
		}
		items = append(items, it)
	}
	return items
}

// collectionRows returns the raw JSON rows of an array-valued key, or nil
// (with a warning) when the value is missing or not an array.
func collectionRows(s Store, key string) []json.RawMessage {
	raw, ok, err := s.Get(key)
	if err != nil || !ok || raw == "" {
		if err != nil {
			log.Printf("warning: cannot read %s, using empty collection: %v", key, err)
		}
		return nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		log.Printf("warning: format error in %s, using empty collection: %v", key, err)
		return nil
	}
	return rows
}
