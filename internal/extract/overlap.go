package extract

// filterOverlaps drops every match that is strictly contained inside a
// longer match, keeping the most specific span: "Friday 5 PM" survives
// while the bare "Friday" and "5 PM" inside it are discarded. Matches of
// equal span are all retained; resolution and dedupe sort those out.
// The filter is idempotent.
func filterOverlaps(matches []RawMatch) []RawMatch {
	if len(matches) < 2 {
		return matches
	}
	out := make([]RawMatch, 0, len(matches))
	for i, m := range matches {
		contained := false
		for j, other := range matches {
			if i == j {
				continue
			}
			if m.Start >= other.Start && m.End <= other.End && m.Len() < other.Len() {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, m)
		}
	}
	return out
}
