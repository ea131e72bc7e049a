package models

import "time"

// Todo tracks one voter on a user's voting-day checklist. The composite
// unique index on (user_id, voter_id) is the authoritative guard against
// duplicate entries; application-level pre-checks only produce friendlier
// errors.
type Todo struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_todos_user_voter"`
	VoterID   uint      `json:"voterId" gorm:"not null;uniqueIndex:idx_todos_user_voter"`
	HasVoted  bool      `json:"hasVoted" gorm:"not null;default:false"`
	Voter     Voter     `json:"voter" gorm:"foreignKey:VoterID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
