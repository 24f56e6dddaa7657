package scheduler

import "fmt"

type Activity string

const (
	ActivityConcept      Activity = "Concept study"
	ActivityProblems     Activity = "Problem solving"
	ActivityReview       Activity = "Review"
	ActivityPractice     Activity = "Practice"
	ActivityMemorization Activity = "Memorization"
)

// Activities is the rotation order. Day n uses Activities[n % len(Activities)].
var Activities = []Activity{
	ActivityConcept,
	ActivityProblems,
	ActivityReview,
	ActivityPractice,
	ActivityMemorization,
}

// noteTemplates holds the study hints per activity. Each takes the subject.
var noteTemplates = map[Activity][]string{
	ActivityConcept: {
		"Read through the core ideas of %s and summarize them in your own words.",
		"Map out how today's %s topics connect to what you already know.",
		"Work through one worked example of %s slowly, step by step.",
	},
	ActivityProblems: {
		"Solve a fresh set of %s problems without looking at the answers.",
		"Pick the hardest %s problem you can find and break it into parts.",
		"Time yourself on a short %s problem set and check accuracy after.",
	},
	ActivityReview: {
		"Revisit your %s notes from earlier days and fill any gaps.",
		"Redo %s questions you got wrong before and compare approaches.",
		"Condense the last few %s sessions into a one-page outline.",
	},
	ActivityPractice: {
		"Apply %s to a small exercise or project of your own.",
		"Do a mixed %s practice round covering several topics.",
		"Explain a %s topic out loud as if teaching someone else.",
	},
	ActivityMemorization: {
		"Drill the key %s terms and formulas with flashcards.",
		"Write %s facts from memory, then check what you missed.",
		"Use spaced repetition on the %s items you recall least.",
	},
}

// ActivityType returns the activity for a zero-based day index.
func ActivityType(dayIndex int) Activity {
	return Activities[mod(dayIndex, len(Activities))]
}

// StudyNote returns the hint for subject on the given day. Unknown
// activities fall back to the concept study hints.
func StudyNote(subject string, activity Activity, dayIndex int) string {
	notes, ok := noteTemplates[activity]
	if !ok {
		notes = noteTemplates[ActivityConcept]
	}
	return fmt.Sprintf(notes[mod(dayIndex, len(notes))], subject)
}

func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
