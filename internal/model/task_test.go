package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)

func TestAddRejectsEmptyText(t *testing.T) {
	tasks := []Task{{ID: 1, Text: "keep me"}}

	out, ok := Add(tasks, "", t0)
	assert.False(t, ok)
	assert.Len(t, out, 1)

	out, ok = Add(tasks, "   ", t0)
	assert.False(t, ok)
	assert.Len(t, out, 1)
}

func TestAddAppendsPendingTask(t *testing.T) {
	out, ok := Add(nil, "Buy milk", t0)
	require.True(t, ok)
	require.Len(t, out, 1)

	assert.Equal(t, "Buy milk", out[0].Text)
	assert.False(t, out[0].Done)
	assert.Equal(t, t0.UnixMilli(), out[0].ID)
}

func TestAddTrimsText(t *testing.T) {
	out, ok := Add(nil, "  Buy milk \n", t0)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", out[0].Text)
}

func TestNextIDMonotonicWithinSameMillisecond(t *testing.T) {
	tasks, _ := Add(nil, "first", t0)
	tasks, _ = Add(tasks, "second", t0)
	tasks, _ = Add(tasks, "third", t0)

	require.Len(t, tasks, 3)
	assert.Greater(t, tasks[1].ID, tasks[0].ID)
	assert.Greater(t, tasks[2].ID, tasks[1].ID)
}

func TestToggleFlipsAndIsIdempotentInPairs(t *testing.T) {
	tasks, _ := Add(nil, "write tests", t0)
	id := tasks[0].ID

	nowDone, ok := Toggle(tasks, id)
	require.True(t, ok)
	assert.True(t, nowDone)
	assert.True(t, tasks[0].Done)

	nowDone, ok = Toggle(tasks, id)
	require.True(t, ok)
	assert.False(t, nowDone)
	assert.False(t, tasks[0].Done)
}

func TestToggleMissIsNoOp(t *testing.T) {
	tasks, _ := Add(nil, "only one", t0)

	_, ok := Toggle(tasks, 42)
	assert.False(t, ok)
	assert.False(t, tasks[0].Done)
}

func TestDeleteRemovesPreservingOrder(t *testing.T) {
	tasks, _ := Add(nil, "a", t0)
	tasks, _ = Add(tasks, "b", t0)
	tasks, _ = Add(tasks, "c", t0)

	out, ok := Delete(tasks, tasks[1].ID)
	require.True(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Text)
	assert.Equal(t, "c", out[1].Text)
}

func TestDeleteMissLeavesListUnchanged(t *testing.T) {
	tasks, _ := Add(nil, "a", t0)
	tasks, _ = Add(tasks, "b", t0)

	out, ok := Delete(tasks, 9999)
	assert.False(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Text)
	assert.Equal(t, "b", out[1].Text)
}

func TestStats(t *testing.T) {
	tasks, _ := Add(nil, "a", t0)
	tasks, _ = Add(tasks, "b", t0)
	tasks, _ = Add(tasks, "c", t0)
	Toggle(tasks, tasks[0].ID)

	done, pending := Stats(tasks)
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}
