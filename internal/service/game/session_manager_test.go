package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManagerLifecycle(t *testing.T) {
	sm := NewSessionManager(&scriptedPicker{}, nil, 0)

	a := sm.CreateSession()
	b := sm.CreateSession()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, sm.ActiveCount())

	got, ok := sm.GetSession(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)

	require.NoError(t, sm.RemoveSession(a.ID))
	_, ok = sm.GetSession(a.ID)
	assert.False(t, ok)
	assert.Error(t, sm.RemoveSession(a.ID))
	assert.Equal(t, 1, sm.ActiveCount())
}

func TestCleanupStaleSessions(t *testing.T) {
	sm := NewSessionManager(&scriptedPicker{columns: []int{6, 6, 6, 6}}, nil, 0)

	idle := sm.CreateSession()
	active := sm.CreateSession()
	finished := sm.CreateSession()
	for _, col := range []int{0, 0, 1, 1} {
		require.NoError(t, finished.OnColumnClicked(col))
	}
	require.True(t, finished.IsFinished())

	now := time.Now()
	idle.LastActivity = now.Add(-2 * time.Hour)
	finished.FinishedAt = now.Add(-90 * time.Minute)

	removed := sm.CleanupStaleSessions(now, time.Hour, time.Hour)
	assert.Equal(t, 2, removed)

	_, ok := sm.GetSession(active.ID)
	assert.True(t, ok)
	_, ok = sm.GetSession(idle.ID)
	assert.False(t, ok)
	_, ok = sm.GetSession(finished.ID)
	assert.False(t, ok)
}
