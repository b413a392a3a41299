package store

import (
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// ProfileUpdate holds a partial-field merge for the user profile.
type ProfileUpdate struct {
	Name                *string
	AgeRange            *string
	Occupation          *string
	Interests           *[]string
	Wishes              *[]string
	IdentityTags        *[]string
	LifeAreaRanking     *[]string
	OnboardingCompleted *bool
}

// SetProfile replaces the user profile wholesale.
func (s *Store) SetProfile(p types.UserProfile) {
	s.mu.Lock()
	s.state.Profile = &p
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Profile saved")
}

// UpdateProfile merges the given fields into the profile, creating it if
// absent.
func (s *Store) UpdateProfile(u ProfileUpdate) types.UserProfile {
	s.mu.Lock()
	if s.state.Profile == nil {
		s.state.Profile = &types.UserProfile{}
	}
	p := s.state.Profile
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.AgeRange != nil {
		p.AgeRange = *u.AgeRange
	}
	if u.Occupation != nil {
		p.Occupation = *u.Occupation
	}
	if u.Interests != nil {
		p.Interests = *u.Interests
	}
	if u.Wishes != nil {
		p.Wishes = *u.Wishes
	}
	if u.IdentityTags != nil {
		p.IdentityTags = *u.IdentityTags
	}
	if u.LifeAreaRanking != nil {
		p.LifeAreaRanking = *u.LifeAreaRanking
	}
	if u.OnboardingCompleted != nil {
		p.OnboardingCompleted = *u.OnboardingCompleted
	}
	updated := *p
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Profile updated")
	return updated
}

// SetVision replaces the vision statement, preserving the original creation
// timestamp when one exists.
func (s *Store) SetVision(text string, imageURLs []string) types.Vision {
	s.mu.Lock()
	now := s.now()
	createdAt := now
	if s.state.Vision != nil {
		createdAt = s.state.Vision.CreatedAt
	}
	vision := types.Vision{
		Text:      text,
		ImageURLs: imageURLs,
		CreatedAt: createdAt,
		UpdatedAt: now,
	}
	s.state.Vision = &vision
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Vision saved")
	return vision
}

// AddAspiration creates an aspiration. Uniqueness per life area is a caller
// convention; use UpsertAspiration to keep it.
func (s *Store) AddAspiration(lifeArea, description string) types.Aspiration {
	s.mu.Lock()
	now := s.now()
	aspiration := types.Aspiration{
		ID:          s.newID(),
		LifeArea:    lifeArea,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.state.Aspirations = append(s.state.Aspirations, aspiration)
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Aspiration saved")
	return aspiration
}

// UpdateAspiration replaces the aspiration's description. Returns false if
// the aspiration does not exist.
func (s *Store) UpdateAspiration(id, description string) (types.Aspiration, bool) {
	s.mu.Lock()
	aspiration, ok := s.state.AspirationByID(id)
	if !ok {
		s.mu.Unlock()
		return types.Aspiration{}, false
	}
	aspiration.Description = description
	aspiration.UpdatedAt = s.now()
	updated := *aspiration
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Aspiration updated")
	return updated, true
}

// DeleteAspiration removes the aspiration. Goals and habits referencing it
// keep their aspiration IDs; the references simply stop resolving, which
// consumers handle as a normal miss. Returns false if the aspiration does
// not exist.
func (s *Store) DeleteAspiration(id string) bool {
	s.mu.Lock()
	if _, ok := s.state.AspirationByID(id); !ok {
		s.mu.Unlock()
		return false
	}
	aspirations := make([]types.Aspiration, 0, len(s.state.Aspirations)-1)
	for _, a := range s.state.Aspirations {
		if a.ID != id {
			aspirations = append(aspirations, a)
		}
	}
	s.state.Aspirations = aspirations
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Aspiration deleted")
	return true
}

// UpsertAspiration updates the aspiration for the given life area or creates
// one when none exists.
func (s *Store) UpsertAspiration(lifeArea, description string) types.Aspiration {
	s.mu.RLock()
	var existingID string
	for _, a := range s.state.Aspirations {
		if a.LifeArea == lifeArea {
			existingID = a.ID
			break
		}
	}
	s.mu.RUnlock()

	if existingID != "" {
		updated, _ := s.UpdateAspiration(existingID, description)
		return updated
	}
	return s.AddAspiration(lifeArea, description)
}
