package domain

import "time"

// ExperiencePerLevel is how much experience advances the player one level.
const ExperiencePerLevel = 100

// User is a player's wallet view: the engine reads coins to gate planting,
// debits on plant and credits on harvest/sell, but never owns this entity.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Coins      int       `json:"coins"`
	Experience int       `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Level derives the player level from accumulated experience.
func (u User) Level() int {
	return u.Experience/ExperiencePerLevel + 1
}
