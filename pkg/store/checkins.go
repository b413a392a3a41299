package store

import (
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// CheckInParams holds the fields for creating a daily check-in.
type CheckInParams struct {
	Date       string // ISO date-only; defaults to today when empty
	Type       string
	Mood       string
	Reflection string
}

// CheckInUpdate holds a partial-field merge for a daily check-in.
type CheckInUpdate struct {
	Mood       *string
	Reflection *string
}

// AddCheckIn creates a daily check-in. Uniqueness per (date, type) is a
// caller convention, not enforced here; use UpsertCheckIn to keep it.
func (s *Store) AddCheckIn(p CheckInParams) types.DailyCheckIn {
	s.mu.Lock()
	date := p.Date
	if date == "" {
		date = dateOnly(s.now())
	}
	checkIn := types.DailyCheckIn{
		ID:         s.newID(),
		Date:       date,
		Type:       p.Type,
		Mood:       p.Mood,
		Reflection: p.Reflection,
		CreatedAt:  s.now(),
	}
	s.state.DailyCheckIns = append(s.state.DailyCheckIns, checkIn)
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Check-in saved")
	return checkIn
}

// UpdateCheckIn merges the given fields into the check-in. Returns false if
// the check-in does not exist.
func (s *Store) UpdateCheckIn(id string, u CheckInUpdate) (types.DailyCheckIn, bool) {
	s.mu.Lock()
	checkIn, ok := s.state.CheckInByID(id)
	if !ok {
		s.mu.Unlock()
		return types.DailyCheckIn{}, false
	}
	if u.Mood != nil {
		checkIn.Mood = *u.Mood
	}
	if u.Reflection != nil {
		checkIn.Reflection = *u.Reflection
	}
	updated := *checkIn
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Check-in updated")
	return updated, true
}

// DeleteCheckIn removes the check-in. Returns false if it does not exist.
func (s *Store) DeleteCheckIn(id string) bool {
	s.mu.Lock()
	if _, ok := s.state.CheckInByID(id); !ok {
		s.mu.Unlock()
		return false
	}
	checkIns := make([]types.DailyCheckIn, 0, len(s.state.DailyCheckIns)-1)
	for _, c := range s.state.DailyCheckIns {
		if c.ID != id {
			checkIns = append(checkIns, c)
		}
	}
	s.state.DailyCheckIns = checkIns
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Check-in deleted")
	return true
}

// CheckInFor returns the first check-in recorded for the given date and type.
func (s *Store) CheckInFor(date, typ string) (types.DailyCheckIn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.DailyCheckIns {
		if c.Date == date && c.Type == typ {
			return c, true
		}
	}
	return types.DailyCheckIn{}, false
}

// UpsertCheckIn updates the existing check-in for (date, type) or creates a
// new one. This is the lookup-then-decide convention that keeps check-ins
// unique per (date, type).
func (s *Store) UpsertCheckIn(p CheckInParams) types.DailyCheckIn {
	date := p.Date
	if date == "" {
		date = dateOnly(s.now())
	}
	if existing, ok := s.CheckInFor(date, p.Type); ok {
		updated, _ := s.UpdateCheckIn(existing.ID, CheckInUpdate{
			Mood:       &p.Mood,
			Reflection: &p.Reflection,
		})
		return updated
	}
	p.Date = date
	return s.AddCheckIn(p)
}
