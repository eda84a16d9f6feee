package model

import "time"

// UserPreferences is rebuilt from interaction history on every scoring
// call; it is never persisted.
// swagger:model UserPreferences
type UserPreferences struct {
	FollowedCreatorIDs  map[uint]bool `json:"followedCreatorIds"`
	TopCategories       []string      `json:"topCategories"`
	PreferredDifficulty Difficulty    `json:"preferredDifficulty"`
	ViewedContentIDs    map[uint]bool `json:"viewedContentIds"`
}

// HasSignals reports whether any personalization signal exists. Viewed
// history alone is not a signal; it is only a demotion input.
func (p *UserPreferences) HasSignals() bool {
	if p == nil {
		return false
	}
	return len(p.FollowedCreatorIDs) > 0 || len(p.TopCategories) > 0 || p.PreferredDifficulty != ""
}

// EntitlementFacts are derived per request, never stored. A zero value
// denies everything except daily-free content.
type EntitlementFacts struct {
	ViewerID            uint // 0 = anonymous
	IsSubscriber        bool
	IsAdmin             bool
	PurchasedContentIDs map[uint]bool
}

// ContentAccess carries the access-relevant properties of one item.
type ContentAccess struct {
	ContentID   uint
	IsDailyFree bool
}

// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	Rank   int     `json:"rank"`
	UserID uint    `json:"userId"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
	Points float64 `json:"points"`
}

// swagger:model WeeklyTrainingStats
type WeeklyTrainingStats struct {
	Since           time.Time `json:"since"`
	Sessions        int       `json:"sessions"`
	TotalMinutes    int       `json:"totalMinutes"`
	SparringRounds  int       `json:"sparringRounds"`
}
