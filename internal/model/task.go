package model

import (
	"strings"
	"time"
)

// Task is the domain model for a single to-do entry.
// Kept minimal on purpose; it’s easy to evolve.
type Task struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// NextID returns a creation-time id that is strictly greater than every
// id already in tasks. Two adds landing in the same millisecond still get
// distinct, increasing ids.
func NextID(tasks []Task, now time.Time) int64 {
	id := now.UnixMilli()
	for _, t := range tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// Add appends a new pending task. Text is trimmed; an empty result is
// rejected and the list returned unchanged with ok=false.
func Add(tasks []Task, text string, now time.Time) (out []Task, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return tasks, false
	}
	return append(tasks, Task{ID: NextID(tasks, now), Text: text}), true
}

// Toggle flips the done flag of the task with the given id in place.
// A miss is a no-op (stale-event guard, not an error).
func Toggle(tasks []Task, id int64) (nowDone, ok bool) {
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Done = !tasks[i].Done
			return tasks[i].Done, true
		}
	}
	return false, false
}

// Delete removes the task with the given id, preserving order.
// A miss returns the list unchanged.
func Delete(tasks []Task, id int64) (out []Task, ok bool) {
	for i := range tasks {
		if tasks[i].ID == id {
			return append(tasks[:i], tasks[i+1:]...), true
		}
	}
	return tasks, false
}

// Stats counts done and pending tasks for headers.
func Stats(tasks []Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
