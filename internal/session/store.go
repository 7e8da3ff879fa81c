// Package session holds the field terminal's day-scoped session state:
// the authenticated user, bearer token, and the vehicle/position pairing
// selected for the current calendar day. State survives process restarts
// through an injected persistence port.
package session

import (
	"strings"
	"sync"
	"time"
)

// DayFormat is the calendar-day format used for SessionDate.
// The day boundary is UTC: a session stamped today is invalid tomorrow
// regardless of the terminal's local zone.
const DayFormat = "2006-01-02"

// Identity is the authenticated user as known client-side. Token validity is
// never checked here — it is discovered reactively via API 401 responses.
type Identity struct {
	NIK      string `json:"nik"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Position string `json:"position"`
}

// Snapshot is the externally visible state shape, serialized as a single
// persisted record.
type Snapshot struct {
	User             *Identity `json:"user"`
	Token            *string   `json:"token"`
	Vehicle          string    `json:"vehicle"`
	SelectedPosition string    `json:"selectedPosition"`
	SessionDate      string    `json:"sessionDate"`
	Authenticated    bool      `json:"isAuthenticated"`
}

// Persistence is the port the store writes its snapshot through.
type Persistence interface {
	Load() (Snapshot, bool, error)
	Save(Snapshot) error
	Clear() error
}

// Store is an explicit session context object with controlled mutation
// methods. Every mutation persists the snapshot as a side effect.
type Store struct {
	mu      sync.Mutex
	snap    Snapshot
	persist Persistence
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock, used by tests to cross day boundaries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New restores the snapshot from the persistence port. A load error is not
// fatal: the store starts empty, matching a first run.
func New(p Persistence, opts ...Option) *Store {
	s := &Store{persist: p, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if snap, ok, err := p.Load(); err == nil && ok {
		s.snap = snap
	}
	return s
}

// Login records the authenticated identity and token. Role and position are
// normalized to their canonical upper casing.
func (s *Store) Login(nik, name, role, position, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.User = &Identity{
		NIK:      nik,
		Name:     name,
		Role:     strings.ToUpper(strings.TrimSpace(role)),
		Position: strings.ToUpper(strings.TrimSpace(position)),
	}
	s.snap.Token = &token
	s.snap.Authenticated = true
	return s.persist.Save(s.snap)
}

// SetSessionDetails records the day's operating context and stamps today.
func (s *Store) SetSessionDetails(vehicle, position string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Vehicle = vehicle
	s.snap.SelectedPosition = strings.ToUpper(strings.TrimSpace(position))
	s.snap.SessionDate = s.now().UTC().Format(DayFormat)
	return s.persist.Save(s.snap)
}

// Logout clears identity, token and the authenticated flag only. Vehicle,
// position and date survive so a same-day re-login skips re-selection.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.User = nil
	s.snap.Token = nil
	s.snap.Authenticated = false
	return s.persist.Save(s.snap)
}

// ClearSession clears identity and session context together (end-of-day).
func (s *Store) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{}
	return s.persist.Clear()
}

// HasValidSession reports whether vehicle and position are set and the
// stored date equals today. Sessions never carry over to a new day.
func (s *Store) HasValidSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Vehicle == "" || s.snap.SelectedPosition == "" || s.snap.SessionDate == "" {
		return false
	}
	return s.snap.SessionDate == s.now().UTC().Format(DayFormat)
}

// Token returns the bearer token, or "" when not authenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Token == nil {
		return ""
	}
	return *s.snap.Token
}

// User returns a copy of the authenticated identity, or nil.
func (s *Store) User() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.User == nil {
		return nil
	}
	u := *s.snap.User
	return &u
}

// Vehicle returns the selected vehicle for the day.
func (s *Store) Vehicle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Vehicle
}

// SelectedPosition returns the role selected for the day.
func (s *Store) SelectedPosition() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.SelectedPosition
}
