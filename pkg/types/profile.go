package types

// UserProfile holds onboarding and personalization data. Wishes are free-text
// goal statements collected during onboarding, distinct from Goal entities.
type UserProfile struct {
	Name                string   `json:"name,omitempty"`
	AgeRange            string   `json:"ageRange,omitempty"`
	Occupation          string   `json:"occupation,omitempty"`
	Interests           []string `json:"interests,omitempty"`
	Wishes              []string `json:"goals,omitempty"`
	IdentityTags        []string `json:"identityTags,omitempty"`
	LifeAreaRanking     []string `json:"lifeAreaRanking,omitempty"`
	OnboardingCompleted bool     `json:"onboardingCompleted,omitempty"`
}

// UserProgress tracks gamification state. XP is always non-negative and
// strictly below the cost of the next level; excess XP is rolled into
// level-ups in the same mutation that granted it.
type UserProgress struct {
	XP    int `json:"xp"`
	Level int `json:"level"`
}
