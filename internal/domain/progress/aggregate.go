package progress

// EffectiveRating computes the single score shown for a skill.
//
// A leaf (no children) scores its latest entry, or 0 with no history. A parent
// scores the integer mean of its children's latest entries, counting only
// children with a positive rating: an unrated child is left out of the
// denominator entirely rather than dragging the average down as a zero. A
// parent whose children are all unrated scores 0.
//
// Children are passed as ready histories, so the computation never recurses;
// the two-level tree depth is a property of the inputs, not of a traversal.
func EffectiveRating(own History, children []History) int {
	if len(children) == 0 {
		latest, ok := own.Latest()
		if !ok {
			return 0
		}
		return latest.Score
	}

	total := 0
	count := 0
	for _, child := range children {
		latest, ok := child.Latest()
		if !ok || latest.Score <= 0 {
			continue
		}
		total += latest.Score
		count++
	}
	if count == 0 {
		return 0
	}
	return total / count
}
