package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hoyle1974/chrono"
	"github.com/hoyle1974/chrono/storage"
	"github.com/hoyle1974/chrono/telemetry"
	"github.com/hoyle1974/chrono/temporal"
	"github.com/sirupsen/logrus"
)

var errUsage = errors.New("usage")

type app struct {
	out   io.Writer
	cfg   config
	log   *logrus.Logger
	store storage.System
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "relate":
		if len(args) != 2 {
			return errUsage
		}
		return a.relate(args[0], args[1])
	case "stream":
		if len(args) != 2 {
			return errUsage
		}
		return a.stream(args[0], args[1])
	case "quantize":
		if len(args) != 2 {
			return errUsage
		}
		return a.quantize(args[0], args[1])
	case "schedule":
		return a.schedule(ctx, args)
	}
	return errUsage
}

func (a *app) relate(first, second string) error {
	x, err := temporal.ParseInstantInterval(first)
	if err != nil {
		return err
	}
	y, err := temporal.ParseInstantInterval(second)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "A encloses B: %v\n", x.Encloses(y))
	fmt.Fprintf(a.out, "B encloses A: %v\n", y.Encloses(x))
	fmt.Fprintf(a.out, "abuts: %v\n", x.Abuts(y))
	fmt.Fprintf(a.out, "overlaps: %v\n", x.Overlaps(y))
	if o, ok := x.Overlap(y); ok {
		fmt.Fprintf(a.out, "overlap: %v\n", o)
	} else {
		fmt.Fprintln(a.out, "overlap: none")
	}
	if g, ok := x.Gap(y); ok {
		fmt.Fprintf(a.out, "gap: %v\n", g)
	} else {
		fmt.Fprintln(a.out, "gap: none")
	}
	fmt.Fprintf(a.out, "join: %v\n", x.Join(y))
	return nil
}

func printAll[T fmt.Stringer](out io.Writer, seq iter.Seq[T]) {
	for p := range seq {
		fmt.Fprintln(out, p.String())
	}
}

func printInstants(out io.Writer, seq iter.Seq[time.Time]) {
	for t := range seq {
		fmt.Fprintln(out, t.Format(time.RFC3339Nano))
	}
}

// stream reads the interval as dates, then as clock times, then as instants.
func (a *app) stream(text, stepText string) error {
	step, err := temporal.ParseStep(stepText)
	if err != nil {
		return err
	}

	if d, err := temporal.ParseDateInterval(text); err == nil {
		seq, err := d.Stream(step)
		if err != nil {
			return err
		}
		printAll(a.out, seq)
		return nil
	}
	if c, err := temporal.ParseClockInterval(text); err == nil {
		seq, err := c.Stream(step)
		if err != nil {
			return err
		}
		printAll(a.out, seq)
		return nil
	}
	i, err := temporal.ParseInstantInterval(text)
	if err != nil {
		return err
	}
	seq, err := i.Stream(step)
	if err != nil {
		return err
	}
	printInstants(a.out, seq)
	return nil
}

// quantize reads the span as a clock span, then as an instant span.
func (a *app) quantize(text, quantumText string) error {
	q, err := time.ParseDuration(quantumText)
	if err != nil {
		return errors.Wrapf(err, "can not parse quantum %q", quantumText)
	}

	if c, err := temporal.ParseClockSpan(text); err == nil {
		seq, err := c.Quantize(q)
		if err != nil {
			return err
		}
		printAll(a.out, seq)
		return nil
	}
	s, err := temporal.ParseInstantSpan(text)
	if err != nil {
		return err
	}
	seq, err := s.Quantize(q)
	if err != nil {
		return err
	}
	printInstants(a.out, seq)
	return nil
}

func (a *app) openSchedule(ctx context.Context) (chrono.Schedule, error) {
	if a.store == nil {
		store, err := a.cfg.open(ctx)
		if err != nil {
			return nil, err
		}
		a.store = store
	}
	return chrono.NewSchedule(ctx, a.store, chrono.WithLogger(telemetry.NewLogrus(a.log, "schedule")))
}

func (a *app) schedule(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	s, err := a.openSchedule(ctx)
	if err != nil {
		return err
	}
	defer func() {
		a.log.Debug(s.CacheStats().String())
	}()

	switch {
	case args[0] == "add" && len(args) == 3:
		iv, err := temporal.ParseInstantInterval(args[2])
		if err != nil {
			return err
		}
		e, err := s.Add(ctx, args[1], iv)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, e.ID)
	case args[0] == "list" && len(args) == 1:
		for _, e := range s.Entries() {
			fmt.Fprintln(a.out, e)
		}
	case args[0] == "rm" && len(args) == 2:
		id, err := uuid.Parse(args[1])
		if err != nil {
			return errors.Wrapf(err, "can not parse id %q", args[1])
		}
		return s.Remove(ctx, id)
	case args[0] == "gaps" && len(args) == 1:
		for _, g := range s.Gaps() {
			fmt.Fprintln(a.out, g)
		}
	case args[0] == "coverage" && len(args) == 1:
		for _, c := range s.Coverage() {
			fmt.Fprintln(a.out, c)
		}
	case args[0] == "history" && len(args) == 1:
		revs, err := s.Revisions(ctx)
		if err != nil {
			return err
		}
		for _, r := range revs {
			fmt.Fprintf(a.out, "%d %s %d\n", r.Number, r.At.Format(time.RFC3339), r.Entries)
		}
	case args[0] == "asof" && len(args) == 2:
		rev, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "can not parse revision %q", args[1])
		}
		entries, err := s.AsOf(ctx, rev)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintln(a.out, e)
		}
	case args[0] == "at" && len(args) == 2:
		t, err := temporal.ParseInstant(args[1])
		if err != nil {
			return err
		}
		for _, e := range s.Containing(t) {
			fmt.Fprintln(a.out, e)
		}
	default:
		return errUsage
	}
	return nil
}
