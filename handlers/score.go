package handlers

// PopularityScore computes the derived ranking metric for a record.
//
// Rating contributes 70% (normalized from the 0-10 scale) and episode
// count 30%, with the episode term saturating at 100 episodes so
// long-runners don't dominate purely by length. The result is on a
// 0-100 scale for in-range inputs.
//
// Pure and deterministic. Out-of-range ratings are not clamped;
// callers validate presence, not range.
func PopularityScore(rating float64, episodes int) float64 {
	episodeTerm := float64(episodes) / 100
	if episodeTerm > 1 {
		episodeTerm = 1
	}
	return (rating/10*0.7 + episodeTerm*0.3) * 100
}
