package chrono

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/misc"
	"github.com/hoyle1974/chrono/storage"
	"github.com/hoyle1974/chrono/temporal"
)

// Every change to a schedule appends a revision holding the full sorted entry
// list. Every KEYFRAME_RATE-th revision is stored whole; the ones in between
// are stored as a diff against their predecessor.
const KEYFRAME_RATE = 16

const (
	historyPrefix = "history/"
	historySuffix = ".rev"
)

var ErrNoRevision = errors.New("no such revision")

// Revision describes one change to a schedule.
type Revision struct {
	Number  int
	At      time.Time
	Entries int
}

type History interface {
	// Revisions lists every recorded revision, oldest first.
	Revisions(ctx context.Context) ([]Revision, error)
	// AsOf returns the entries as they were right after revision rev.
	AsOf(ctx context.Context, rev int) ([]Entry, error)
}

type revisionRecord struct {
	Number   int
	At       time.Time
	Entries  int
	Keyframe bool
	Data     []byte
}

func revisionKey(rev int) string {
	return fmt.Sprintf("%s%08d%s", historyPrefix, rev, historySuffix)
}

func parseRevisionKey(key string) (int, bool) {
	if !strings.HasPrefix(key, historyPrefix) || !strings.HasSuffix(key, historySuffix) {
		return 0, false
	}
	rev, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(key, historyPrefix), historySuffix))
	return rev, err == nil && rev > 0
}

func isKeyframe(rev int) bool { return (rev-1)%KEYFRAME_RATE == 0 }

func encodeSnapshot(entries []Entry) ([]byte, error) {
	records := make([]entryRecord, len(entries))
	for i, e := range entries {
		records[i] = entryRecord{ID: e.ID, Name: e.Name, Start: e.Interval.Start(), End: e.Interval.End()}
	}
	return misc.EncodeToBytes(records)
}

func decodeSnapshot(data []byte) ([]Entry, error) {
	var records []entryRecord
	if err := misc.DecodeFromBytes(data, &records); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		iv, err := temporal.NewInstantInterval(r.Start, r.End)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %s", r.ID)
		}
		entries = append(entries, Entry{ID: r.ID, Name: r.Name, Interval: iv})
	}
	return entries, nil
}

func (s *schedule) readRevision(ctx context.Context, rev int) (revisionRecord, error) {
	var r revisionRecord
	data, err := s.storage.Read(ctx, revisionKey(rev))
	if err != nil {
		return r, errors.Wrapf(err, "revision %d", rev)
	}
	if err := misc.DecodeFromBytes(data, &r); err != nil {
		return r, errors.Wrapf(err, "revision %d", rev)
	}
	return r, nil
}

// snapshotAt rebuilds the encoded entry list of rev from the keyframe at or
// before it.
func (s *schedule) snapshotAt(ctx context.Context, rev int) ([]byte, error) {
	if rev < 1 {
		return nil, errors.Wrapf(ErrNoRevision, "%d", rev)
	}
	var snapshot []byte
	for r := rev - (rev-1)%KEYFRAME_RATE; r <= rev; r++ {
		record, err := s.readRevision(ctx, r)
		if err != nil {
			return nil, err
		}
		if record.Keyframe {
			snapshot = record.Data
			continue
		}
		snapshot, err = misc.ApplyDiff(snapshot, record.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "revision %d", r)
		}
	}
	return snapshot, nil
}

// loadHead finds the newest revision in storage. It must be called with the
// lock held.
func (s *schedule) loadHead(ctx context.Context) error {
	keys, err := s.storage.GetKeysWithPrefix(ctx, historyPrefix)
	if err != nil {
		return errors.Wrap(err, "can not list revisions")
	}
	head := 0
	for _, key := range keys {
		if rev, ok := parseRevisionKey(key); ok && rev > head {
			head = rev
		}
	}
	s.head, s.headSnapshot = head, nil
	if head == 0 {
		return nil
	}
	s.headSnapshot, err = s.snapshotAt(ctx, head)
	return err
}

// record appends a revision for the current entries. It must be called with
// the lock held.
func (s *schedule) record(ctx context.Context) error {
	entries := s.sortedLocked()
	snapshot, err := encodeSnapshot(entries)
	if err != nil {
		return err
	}

	rev := s.head + 1
	r := revisionRecord{Number: rev, At: time.Now(), Entries: len(entries), Keyframe: isKeyframe(rev)}
	if r.Keyframe {
		r.Data = snapshot
	} else {
		r.Data, err = misc.GenerateDiff(s.headSnapshot, snapshot)
		if err != nil {
			return err
		}
	}
	data, err := misc.EncodeToBytes(r)
	if err != nil {
		return err
	}
	if err := s.storage.Write(ctx, revisionKey(rev), data); err != nil {
		return errors.Wrapf(err, "can not write revision %d", rev)
	}
	s.head, s.headSnapshot = rev, snapshot
	s.metrics.SetCount("schedule.revisions", int64(rev))
	return nil
}

// Revisions implements History.
func (s *schedule) Revisions(ctx context.Context) ([]Revision, error) {
	keys, err := s.storage.GetKeysWithPrefix(ctx, historyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "can not list revisions")
	}
	var revs []int
	for _, key := range keys {
		if rev, ok := parseRevisionKey(key); ok {
			revs = append(revs, rev)
		}
	}
	slices.Sort(revs)

	ret := make([]Revision, 0, len(revs))
	for _, rev := range revs {
		r, err := s.readRevision(ctx, rev)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Revision{Number: r.Number, At: r.At, Entries: r.Entries})
	}
	return ret, nil
}

// AsOf implements History.
func (s *schedule) AsOf(ctx context.Context, rev int) ([]Entry, error) {
	snapshot, err := s.snapshotAt(ctx, rev)
	if err != nil {
		if errors.Is(err, storage.ErrDoesNotExist) {
			return nil, errors.Wrapf(ErrNoRevision, "%d", rev)
		}
		return nil, err
	}
	return decodeSnapshot(snapshot)
}
