package chrono

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hoyle1974/chrono/misc"
	"github.com/hoyle1974/chrono/temporal"
)

const (
	entryPrefix = "schedule/"
	entrySuffix = ".entry"
)

// Entry is a named range of instants kept in a Schedule.
type Entry struct {
	ID       uuid.UUID
	Name     string
	Interval temporal.InstantInterval
}

func (e Entry) String() string {
	return e.ID.String() + " " + e.Name + " " + e.Interval.String()
}

// entryRecord is the stored form of an Entry.
type entryRecord struct {
	ID    uuid.UUID
	Name  string
	Start time.Time
	End   time.Time
}

func entryKey(id uuid.UUID) string {
	return entryPrefix + id.String() + entrySuffix
}

func isEntryKey(key string) bool {
	return strings.HasPrefix(key, entryPrefix) && strings.HasSuffix(key, entrySuffix)
}

func encodeEntry(e Entry) ([]byte, error) {
	return misc.EncodeToBytes(entryRecord{
		ID:    e.ID,
		Name:  e.Name,
		Start: e.Interval.Start(),
		End:   e.Interval.End(),
	})
}

func decodeEntry(data []byte) (Entry, error) {
	var r entryRecord
	if err := misc.DecodeFromBytes(data, &r); err != nil {
		return Entry{}, err
	}
	iv, err := temporal.NewInstantInterval(r.Start, r.End)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "entry %s", r.ID)
	}
	return Entry{ID: r.ID, Name: r.Name, Interval: iv}, nil
}

// compareEntries orders entries by start, then end, then name, then id.
func compareEntries(a, b Entry) int {
	if c := a.Interval.Start().Compare(b.Interval.Start()); c != 0 {
		return c
	}
	if c := a.Interval.End().Compare(b.Interval.End()); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}
