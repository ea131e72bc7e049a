package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sudhev0011/VoterMngmtServer/models"
)

type TodoStats struct {
	Total   int64 `json:"total"`
	Voted   int64 `json:"voted"`
	Pending int64 `json:"pending"`
}

// TodoStore maintains each user's voter checklist. Every lookup folds the
// owner into the WHERE predicate so one user's ids reveal nothing about
// another's entries.
type TodoStore struct {
	db *gorm.DB
}

func NewTodoStore(db *gorm.DB) *TodoStore {
	return &TodoStore{db: db}
}

// ListByUser returns the user's todos with their voters, newest first.
func (s *TodoStore) ListByUser(userID uint) ([]models.Todo, error) {
	// Initialised so an empty checklist serialises as [] rather than null.
	todos := []models.Todo{}
	err := s.db.Preload("Voter").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Add creates a checklist entry for the voter. ErrNotFound when the voter id
// does not resolve; ErrConflict when the user already tracks that voter. The
// explicit lookup gives a friendly error in the common case, but the unique
// index on (user_id, voter_id) is what holds under concurrent inserts.
func (s *TodoStore) Add(userID, voterID uint) (*models.Todo, error) {
	var voter models.Voter
	if err := s.db.First(&voter, voterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find voter: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.Todo{}).
		Where("user_id = ? AND voter_id = ?", userID, voterID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check todo: %w", err)
	}
	if count > 0 {
		return nil, ErrConflict
	}

	todo := models.Todo{UserID: userID, VoterID: voterID, HasVoted: false}
	if err := s.db.Create(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create todo: %w", err)
	}

	todo.Voter = voter
	return &todo, nil
}

// SetVoted updates hasVoted on a todo owned by userID and returns the joined
// record. A todo owned by someone else is indistinguishable from a missing
// one.
func (s *TodoStore) SetVoted(userID, todoID uint, hasVoted bool) (*models.Todo, error) {
	res := s.db.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", todoID, userID).
		Update("has_voted", hasVoted)
	if res.Error != nil {
		return nil, fmt.Errorf("update todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var todo models.Todo
	if err := s.db.Preload("Voter").First(&todo, todoID).Error; err != nil {
		return nil, fmt.Errorf("reload todo: %w", err)
	}
	return &todo, nil
}

// Remove deletes a todo under the same ownership-scoped predicate as SetVoted.
func (s *TodoStore) Remove(userID, todoID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", todoID, userID).Delete(&models.Todo{})
	if res.Error != nil {
		return fmt.Errorf("delete todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates the user's checklist counts. A user with no todos gets
// zeros, never an error.
func (s *TodoStore) Stats(userID uint) (TodoStats, error) {
	var stats TodoStats
	if err := s.db.Model(&models.Todo{}).
		Where("user_id = ?", userID).
		Count(&stats.Total).Error; err != nil {
		return TodoStats{}, fmt.Errorf("count todos: %w", err)
	}
	if err := s.db.Model(&models.Todo{}).
		Where("user_id = ? AND has_voted = ?", userID, true).
		Count(&stats.Voted).Error; err != nil {
		return TodoStats{}, fmt.Errorf("count voted todos: %w", err)
	}
	stats.Pending = stats.Total - stats.Voted
	return stats, nil
}

// BulkSetVoted flips hasVoted on every listed todo owned by userID. Ids that
// are missing or belong to another user are skipped, not errors. The returned
// count is rows matched by the predicate: a todo already in the requested
// state still counts, and its updatedAt is refreshed along with the rest.
// The update is not atomic across the whole set.
func (s *TodoStore) BulkSetVoted(userID uint, todoIDs []uint, hasVoted bool) (int64, error) {
	res := s.db.Model(&models.Todo{}).
		Where("id IN ? AND user_id = ?", todoIDs, userID).
		Update("has_voted", hasVoted)
	if res.Error != nil {
		return 0, fmt.Errorf("bulk update todos: %w", res.Error)
	}
	return res.RowsAffected, nil
}
