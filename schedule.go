// Package chrono keeps named ranges of instants on a storage backend and
// answers questions about them with the interval algebra.
package chrono

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hoyle1974/chrono/interval"
	"github.com/hoyle1974/chrono/misc"
	"github.com/hoyle1974/chrono/storage"
	"github.com/hoyle1974/chrono/telemetry"
	"github.com/hoyle1974/chrono/temporal"
)

var ErrNotFound = errors.New("entry not found")

type Write interface {
	Add(ctx context.Context, name string, iv temporal.InstantInterval) (Entry, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type Read interface {
	Get(ctx context.Context, id uuid.UUID) (Entry, error)
	// Entries returns every entry ordered by start, end, name and id.
	Entries() []Entry
	// Refresh picks up entries written or removed by other schedules sharing
	// the same storage.
	Refresh(ctx context.Context) error
}

type Query interface {
	// Containing returns the entries whose interval contains t.
	Containing(t time.Time) []Entry
	// Overlapping returns the entries whose interval overlaps b.
	Overlapping(b interval.Bounds[time.Time]) []Entry
	// Coverage merges overlapping and abutting entries into disjoint
	// intervals. Empty entries cover nothing.
	Coverage() []temporal.InstantInterval
	// Gaps returns the uncovered intervals between the first start and the last end.
	Gaps() []temporal.InstantInterval
	// Cover returns the join of all entries, or false for an empty schedule.
	Cover() (temporal.InstantInterval, bool)
}

type Schedule interface {
	Write
	Read
	Query
	History
	CacheStats() *CacheStats
}

type schedule struct {
	_       misc.NoCopy
	lock    sync.Mutex
	storage storage.System
	entries map[uuid.UUID]Entry
	cache   *entryCache
	log     telemetry.Logger
	metrics telemetry.Metrics

	// newest revision and its encoded entry list
	head         int
	headSnapshot []byte
}

// NewSchedule opens the schedule kept on store, loading every stored entry.
func NewSchedule(ctx context.Context, store storage.System, opts ...Option) (Schedule, error) {
	if store == nil {
		return nil, errors.Wrap(interval.ErrNullArgument, "storage")
	}
	s := &schedule{
		storage: store,
		entries: map[uuid.UUID]Entry{},
		cache:   newEntryCache(defaultCacheExpiration),
		log:     telemetry.NOPLogger{},
		metrics: telemetry.NOPMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh implements Read.
func (s *schedule) Refresh(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	keys, err := s.storage.GetKeysWithPrefix(ctx, entryPrefix)
	if err != nil {
		return errors.Wrap(err, "can not list entries")
	}

	loaded := make(map[uuid.UUID]Entry, len(keys))
	for _, key := range keys {
		if !isEntryKey(key) {
			continue
		}
		e, err := s.readEntry(ctx, key)
		if errors.Is(err, storage.ErrDoesNotExist) {
			// removed between listing and reading
			continue
		}
		if err != nil {
			return err
		}
		loaded[e.ID] = e
	}

	s.entries = loaded
	if err := s.loadHead(ctx); err != nil {
		return err
	}
	s.log.Debug(fmt.Sprintf("loaded %d entries at revision %d, %v", len(loaded), s.head, &s.cache.stats))
	s.report()
	return nil
}

func (s *schedule) readEntry(ctx context.Context, key string) (Entry, error) {
	if e, ok := s.cache.get(key); ok {
		return e, nil
	}
	data, err := s.storage.Read(ctx, key)
	if err != nil {
		return Entry{}, err
	}
	e, err := decodeEntry(data)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "can not decode %s", key)
	}
	s.cache.put(key, e)
	return e, nil
}

// report must be called with the lock held.
func (s *schedule) report() {
	s.metrics.SetCount("schedule.entries", int64(len(s.entries)))
	s.metrics.SetGauge("schedule.cache.hit_ratio", s.cache.stats.HitRatio())
}

// Add implements Write.
func (s *schedule) Add(ctx context.Context, name string, iv temporal.InstantInterval) (Entry, error) {
	e := Entry{ID: uuid.New(), Name: name, Interval: iv}
	data, err := encodeEntry(e)
	if err != nil {
		return Entry{}, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	key := entryKey(e.ID)
	if err := s.storage.Write(ctx, key, data); err != nil {
		s.log.Error("can not write entry "+key, err)
		return Entry{}, errors.Wrap(err, "can not write entry")
	}
	s.entries[e.ID] = e
	s.cache.put(key, e)
	s.log.Info("added " + e.String())
	s.report()
	if err := s.record(ctx); err != nil {
		s.log.Error("can not record revision", err)
		return e, err
	}
	return e, nil
}

// Remove implements Write.
func (s *schedule) Remove(ctx context.Context, id uuid.UUID) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "%s", id)
	}
	key := entryKey(id)
	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.Error("can not delete entry "+key, err)
		return errors.Wrap(err, "can not delete entry")
	}
	delete(s.entries, id)
	s.cache.drop(key)
	s.log.Info("removed " + e.String())
	s.report()
	if err := s.record(ctx); err != nil {
		s.log.Error("can not record revision", err)
		return err
	}
	return nil
}

// Get implements Read. Entries are read through the cache so that an entry
// added by another schedule on the same storage is found.
func (s *schedule) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	s.lock.Lock()
	e, ok := s.entries[id]
	s.lock.Unlock()
	if ok {
		return e, nil
	}

	e, err := s.readEntry(ctx, entryKey(id))
	if errors.Is(err, storage.ErrDoesNotExist) {
		return Entry{}, errors.Wrapf(ErrNotFound, "%s", id)
	}
	if err != nil {
		return Entry{}, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.entries[e.ID] = e
	s.report()
	return e, nil
}

// Entries implements Read.
func (s *schedule) Entries() []Entry {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.sortedLocked()
}

func (s *schedule) sortedLocked() []Entry {
	ret := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		ret = append(ret, e)
	}
	slices.SortFunc(ret, compareEntries)
	return ret
}

func (s *schedule) filter(keep func(Entry) bool) []Entry {
	var ret []Entry
	for _, e := range s.Entries() {
		if keep(e) {
			ret = append(ret, e)
		}
	}
	return ret
}

// Containing implements Query.
func (s *schedule) Containing(t time.Time) []Entry {
	return s.filter(func(e Entry) bool { return e.Interval.Contains(t) })
}

// Overlapping implements Query.
func (s *schedule) Overlapping(b interval.Bounds[time.Time]) []Entry {
	if b == nil {
		return nil
	}
	return s.filter(func(e Entry) bool { return e.Interval.Overlaps(b) })
}

// Coverage implements Query. Entries arrive sorted by start, so each one
// either has a gap to the running interval or extends it.
func (s *schedule) Coverage() []temporal.InstantInterval {
	var ret []temporal.InstantInterval
	for _, e := range s.Entries() {
		if e.Interval.IsEmpty() {
			continue
		}
		if len(ret) == 0 {
			ret = append(ret, e.Interval)
			continue
		}
		last := ret[len(ret)-1]
		if _, ok := last.Gap(e.Interval); ok {
			ret = append(ret, e.Interval)
			continue
		}
		ret[len(ret)-1] = last.Join(e.Interval)
	}
	return ret
}

// Gaps implements Query.
func (s *schedule) Gaps() []temporal.InstantInterval {
	coverage := s.Coverage()
	var ret []temporal.InstantInterval
	for i := 1; i < len(coverage); i++ {
		if g, ok := coverage[i-1].Gap(coverage[i]); ok {
			ret = append(ret, g)
		}
	}
	return ret
}

// Cover implements Query.
func (s *schedule) Cover() (temporal.InstantInterval, bool) {
	entries := s.Entries()
	if len(entries) == 0 {
		return temporal.InstantInterval{}, false
	}
	cover := entries[0].Interval
	for _, e := range entries[1:] {
		cover = cover.Join(e.Interval)
	}
	return cover, true
}

func (s *schedule) CacheStats() *CacheStats {
	return &s.cache.stats
}
