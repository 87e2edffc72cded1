// Package xp implements the progression layer: points earned by finishing
// work, a level derived from points, and a fixed roadmap of milestones
// unlocked by level. The level and the unlocked flags are caches of the
// point total; loaders must recompute them rather than trust what was
// persisted.
package xp

// Points granted per event. Un-toggling a task does not refund: the point
// total only ratchets upward.
const (
	TaskCompleted   = 10
	SessionFinished = 25
)

const pointsPerLevel = 100

// Level derives the level from a point total: 100 points per level,
// starting at level 1.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return points/pointsPerLevel + 1
}

// Milestone is one roadmap entry, unlocked once the derived level reaches
// its threshold.
type Milestone struct {
	Title    string `json:"title"`
	Level    int    `json:"level"`
	Unlocked bool   `json:"unlocked"`
}

// DefaultRoadmap returns the built-in milestone ladder.
func DefaultRoadmap() []Milestone {
	return []Milestone{
		{Title: "First steps", Level: 1},
		{Title: "Getting traction", Level: 2},
		{Title: "Deep work", Level: 3},
		{Title: "Focus veteran", Level: 5},
		{Title: "Flow state", Level: 8},
	}
}

// Revalidate recomputes every Unlocked flag from the given level,
// threshold inclusive. Persisted flags are overwritten, never trusted.
func Revalidate(roadmap []Milestone, level int) {
	for i := range roadmap {
		roadmap[i].Unlocked = level >= roadmap[i].Level
	}
}

// Unlocked counts unlocked milestones, for status lines.
func Unlocked(roadmap []Milestone) int {
	n := 0
	for _, m := range roadmap {
		if m.Unlocked {
			n++
		}
	}
	return n
}
