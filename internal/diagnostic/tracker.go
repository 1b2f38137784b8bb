package diagnostic

import (
	"sync"
	"sync/atomic"
)

// Tracker records diagnostics from concurrent callers. SawErrors is a
// single atomic load and never takes the lock.
type Tracker struct {
	sawErrors atomic.Bool

	mu    sync.Mutex
	diags Diagnostics
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Report records d.
func (t *Tracker) Report(d Diagnostic) {
	t.mu.Lock()
	t.diags.Add(d)
	t.mu.Unlock()

	if d.Severity == SeverityError {
		t.sawErrors.Store(true)
	}
}

// ReportAll records every diagnostic in ds.
func (t *Tracker) ReportAll(ds Diagnostics) {
	for _, group := range [][]Diagnostic{ds.Errors, ds.Warnings, ds.Infos} {
		for _, d := range group {
			t.Report(d)
		}
	}
}

// SawErrors reports whether an error diagnostic has been recorded.
func (t *Tracker) SawErrors() bool {
	return t.sawErrors.Load()
}

// Snapshot returns a copy of everything recorded so far.
func (t *Tracker) Snapshot() Diagnostics {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out Diagnostics
	out.Merge(t.diags)

	return out
}
