package docedit

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// CommitFunc submits the whole working document to the owning collaborator
// (validation plus persistence). It returns whether the document was
// accepted, the canonical document to adopt as the new baseline when it was,
// and any validation issues to surface when it was not. A non-nil error means
// transport failure: nothing about the submission was decided.
type CommitFunc func(ctx context.Context, doc any) (accepted bool, canonical any, issues Issues, err error)

// Store owns a session's working document, the last accepted baseline, the
// dirty flag, and externally attached validation issues. All mutation goes
// through UpdateAtPath/Commit/Reset/Load; reads hand out clones, so no caller
// ever holds a mutable reference into store state.
//
// The editor's event model is strictly sequential, but Store still guards its
// state with a mutex so embedding in a concurrent host preserves the
// no-interleaved-partial-mutation guarantee.
type Store struct {
	mu       sync.Mutex
	doc      any
	baseline any
	dirty    bool
	issues   Issues
	rev      ulid.ULID
	entropy  *rand.Rand
}

// NewStore starts a session over doc. The baseline is an independent clone of
// doc and the store starts clean.
func NewStore(doc any) *Store {
	s := &Store{
		doc:      doc,
		baseline: Clone(doc),
		entropy:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.rev = s.newRevision()
	return s
}

func (s *Store) newRevision() ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy)
}

// Document returns a deep clone of the working document.
func (s *Store) Document() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Clone(s.doc)
}

// ValueAt returns a clone of the value at p, with ok=false when the document
// lacks that branch.
func (s *Store) ValueAt(p Path) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := Get(s.doc, p)
	if !ok {
		return nil, false
	}
	return Clone(v), true
}

// UpdateAtPath writes value at p, marks the store dirty, and drops any
// attached validation issues: they described a document that no longer
// exists. The written value is cloned so the caller keeps ownership.
func (s *Store) UpdateAtPath(p Path, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = Set(s.doc, p, Clone(value))
	s.dirty = true
	s.issues = nil
}

// UpdateAt is UpdateAtPath over path text.
func (s *Store) UpdateAt(path string, value any) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}
	s.UpdateAtPath(p, value)
	return nil
}

// Dirty reports whether the working document has diverged from the baseline
// since the last accepted commit, reset, or load.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Issues returns the currently attached validation issues.
func (s *Store) Issues() Issues {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(Issues(nil), s.issues...)
}

// IssueAt looks up the first issue attached at exactly the given path.
func (s *Store) IssueAt(path string) (Issue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issues.At(path)
}

// SetIssues attaches externally produced validation results, replacing any
// previous set.
func (s *Store) SetIssues(iss Issues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issues = append(Issues(nil), iss...)
}

// Revision identifies the current baseline. It changes on every accepted
// commit and on Load.
func (s *Store) Revision() ulid.ULID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}

// Commit submits the whole working document through fn.
//
// Accepted: the returned canonical document becomes both baseline and working
// copy in one transition, the store goes clean, and a new revision is
// stamped. Rejected: the working copy is untouched, the reported issues
// replace the attached set, and the store stays dirty. Transport error:
// nothing changes and the error is returned as-is.
//
// The submission is snapshotted before fn runs, and fn runs without the store
// lock held, so local edits during a slow commit are allowed; whichever
// state-setting effect runs last wins. Callers needing stricter ordering must
// serialize saves themselves.
func (s *Store) Commit(ctx context.Context, fn CommitFunc) (bool, error) {
	s.mu.Lock()
	snapshot := Clone(s.doc)
	s.mu.Unlock()

	accepted, canonical, issues, err := fn(ctx, snapshot)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !accepted {
		s.issues = append(Issues(nil), issues...)
		if len(s.issues) > 0 {
			return false, s.issues
		}
		return false, nil
	}
	if canonical == nil {
		canonical = snapshot
	}
	s.doc = Clone(canonical)
	s.baseline = Clone(canonical)
	s.dirty = false
	s.issues = append(Issues(nil), issues...)
	s.rev = s.newRevision()
	return true, nil
}

// Reset discards local edits: the working copy becomes a fresh clone of the
// baseline, the store goes clean, and attached issues are dropped.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = Clone(s.baseline)
	s.dirty = false
	s.issues = nil
}

// Load replaces both working copy and baseline with doc (data pushed from
// outside is by definition clean) and stamps a new revision.
func (s *Store) Load(doc any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = Clone(doc)
	s.baseline = Clone(doc)
	s.dirty = false
	s.issues = nil
	s.rev = s.newRevision()
}
