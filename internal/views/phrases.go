package views

import (
	"math/rand"

	"github.com/JoquimMarques/DaySignal/internal/tracker"
)

// Phrase pools per progress bucket. The engine reports the bucket; which
// line the user sees is a presentation detail.
var phrasePool = map[tracker.PhraseBucket][]string{
	tracker.BucketEmpty: {
		"Nothing planned yet. Add a task to get going.",
		"A blank day. What will you make of it?",
	},
	tracker.BucketZero: {
		"Everything is still ahead of you.",
		"No progress yet. Start small.",
	},
	tracker.BucketStarted: {
		"Off the mark. Keep the momentum.",
		"First steps done. Keep moving.",
	},
	tracker.BucketHalf: {
		"Past the halfway feeling. Push on.",
		"Solid progress. The day is working.",
	},
	tracker.BucketAlmost: {
		"Almost there. One more push.",
		"So close. Finish strong.",
	},
	tracker.BucketDone: {
		"Everything done. Enjoy the rest of the day.",
		"Clean sweep. Well earned.",
	},
}

// PhraseFor picks a line for the bucket using the provided source, so the
// UI can vary phrasing per render while tests pin the choice.
func PhraseFor(bucket tracker.PhraseBucket, rng *rand.Rand) string {
	pool, ok := phrasePool[bucket]
	if !ok || len(pool) == 0 {
		return ""
	}
	if rng == nil {
		return pool[0]
	}
	return pool[rng.Intn(len(pool))]
}
