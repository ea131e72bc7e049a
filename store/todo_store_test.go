package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sudhev0011/VoterMngmtServer/models"
)

func TestTodoStoreAdd(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	voter := seedVoter(t, db, 1, "Anil")

	todo, err := todos.Add(1, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), todo.UserID)
	assert.False(t, todo.HasVoted)
	assert.Equal(t, "Anil", todo.Voter.Name)

	_, err = todos.Add(1, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoStoreAddIsIdempotentInEffect(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	voter := seedVoter(t, db, 1, "Anil")

	_, err := todos.Add(1, voter.ID)
	require.NoError(t, err)

	_, err = todos.Add(1, voter.ID)
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, db.Model(&models.Todo{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// A different user may track the same voter.
	_, err = todos.Add(2, voter.ID)
	require.NoError(t, err)
}

func TestTodoStoreUniqueIndexIsAuthoritative(t *testing.T) {
	db := newTestDB(t)
	voter := seedVoter(t, db, 1, "Anil")

	require.NoError(t, db.Create(&models.Todo{UserID: 1, VoterID: voter.ID}).Error)

	// Bypassing the pre-check, the way a racing insert would.
	err := db.Create(&models.Todo{UserID: 1, VoterID: voter.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestTodoStoreListByUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	first := seedVoter(t, db, 1, "Anil")
	second := seedVoter(t, db, 2, "Beena")

	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&models.Todo{UserID: 1, VoterID: first.ID, CreatedAt: base}).Error)
	require.NoError(t, db.Create(&models.Todo{UserID: 1, VoterID: second.ID, CreatedAt: base.Add(time.Minute)}).Error)
	require.NoError(t, db.Create(&models.Todo{UserID: 2, VoterID: first.ID, CreatedAt: base.Add(2 * time.Minute)}).Error)

	got, err := todos.ListByUser(1)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].VoterID)
	assert.Equal(t, first.ID, got[1].VoterID)
	assert.Equal(t, "Beena", got[0].Voter.Name)
}

func TestTodoStoreOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	voter := seedVoter(t, db, 1, "Anil")

	todo, err := todos.Add(1, voter.ID)
	require.NoError(t, err)

	// Another user's id never leaks existence.
	_, err = todos.SetVoted(2, todo.ID, true)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, todos.Remove(2, todo.ID), ErrNotFound)

	updated, err := todos.SetVoted(1, todo.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.HasVoted)
	assert.Equal(t, "Anil", updated.Voter.Name)

	require.NoError(t, todos.Remove(1, todo.ID))
	assert.ErrorIs(t, todos.Remove(1, todo.ID), ErrNotFound)
}

func TestTodoStoreStats(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)

	stats, err := todos.Stats(1)
	require.NoError(t, err)
	assert.Equal(t, TodoStats{}, stats)

	a := seedVoter(t, db, 1, "Anil")
	b := seedVoter(t, db, 2, "Beena")
	c := seedVoter(t, db, 3, "Charlie")

	for _, v := range []*models.Voter{a, b, c} {
		_, err := todos.Add(1, v.ID)
		require.NoError(t, err)
	}
	var marked models.Todo
	require.NoError(t, db.Where("user_id = ? AND voter_id = ?", 1, a.ID).First(&marked).Error)
	_, err = todos.SetVoted(1, marked.ID, true)
	require.NoError(t, err)

	stats, err = todos.Stats(1)
	require.NoError(t, err)
	assert.Equal(t, TodoStats{Total: 3, Voted: 1, Pending: 2}, stats)

	// Another user's todos never bleed into the aggregate.
	stats, err = todos.Stats(2)
	require.NoError(t, err)
	assert.Equal(t, TodoStats{}, stats)
}

func TestTodoStoreBulkSetVoted(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	a := seedVoter(t, db, 1, "Anil")
	b := seedVoter(t, db, 2, "Beena")

	mine, err := todos.Add(1, a.ID)
	require.NoError(t, err)
	mineToo, err := todos.Add(1, b.ID)
	require.NoError(t, err)
	foreign, err := todos.Add(2, a.ID)
	require.NoError(t, err)

	// A foreign id and a missing id are skipped, not errors.
	modified, err := todos.BulkSetVoted(1, []uint{mine.ID, mineToo.ID, foreign.ID, 9999}, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, modified)

	stats, err := todos.Stats(1)
	require.NoError(t, err)
	assert.Equal(t, TodoStats{Total: 2, Voted: 2, Pending: 0}, stats)

	stats, err = todos.Stats(2)
	require.NoError(t, err)
	assert.Equal(t, TodoStats{Total: 1, Voted: 0, Pending: 1}, stats)
}
