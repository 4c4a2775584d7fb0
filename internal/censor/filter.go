package censor

import (
	"sync/atomic"
	"time"
)

// Stats contains runtime filter metrics.
type Stats struct {
	WordCount     int
	TotalLookups  int64
	TotalMasked   int64
	TotalReloads  int64
	LastReloadAt  time.Time
	LastLookupDur time.Duration
}

// Filter applies the current word list snapshot. It is safe for concurrent
// use; Reload replaces the snapshot with a single atomic store.
type Filter struct {
	list atomic.Pointer[WordList]

	totalLookups    atomic.Int64
	totalMasked     atomic.Int64
	totalReloads    atomic.Int64
	lastReloadNanos atomic.Int64
	lastLookupNanos atomic.Int64
}

// NewFilter creates a Filter holding a list compiled from words.
func NewFilter(words []string) *Filter {
	f := &Filter{}
	f.list.Store(Compile(words))
	return f
}

// Censor masks forbidden words in text using the current snapshot.
func (f *Filter) Censor(text string) string {
	start := time.Now()
	out, n := censor(text, f.list.Load())

	f.totalLookups.Add(1)
	f.totalMasked.Add(int64(n))
	f.lastLookupNanos.Store(time.Since(start).Nanoseconds())
	return out
}

// Reload compiles words off to the side and publishes the result. Callers
// already inside Censor finish on the previous snapshot.
func (f *Filter) Reload(words []string) *WordList {
	wl := Compile(words)
	f.Swap(wl)
	return wl
}

// Swap publishes a precompiled list.
func (f *Filter) Swap(wl *WordList) {
	if wl == nil {
		wl = Compile(nil)
	}
	f.list.Store(wl)
	f.totalReloads.Add(1)
	f.lastReloadNanos.Store(time.Now().UnixNano())
}

// Snapshot returns the list currently in use.
func (f *Filter) Snapshot() *WordList {
	return f.list.Load()
}

// WordCount returns the number of entries in the current snapshot.
func (f *Filter) WordCount() int {
	return f.list.Load().Len()
}

// Stats returns current metrics.
func (f *Filter) Stats() Stats {
	s := Stats{
		WordCount:     f.list.Load().Len(),
		TotalLookups:  f.totalLookups.Load(),
		TotalMasked:   f.totalMasked.Load(),
		TotalReloads:  f.totalReloads.Load(),
		LastLookupDur: time.Duration(f.lastLookupNanos.Load()),
	}
	if ns := f.lastReloadNanos.Load(); ns > 0 {
		s.LastReloadAt = time.Unix(0, ns).UTC()
	}
	return s
}
