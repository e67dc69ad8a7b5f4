package schedule

// SplitByReset splits a roster into sequential parts. Schedules are often
// authored as two back-to-back numbered phases in one table; the session
// index restarting downward (e.g. 12 -> 1) marks the boundary. Rows are
// first put in date order with input order as tie-break, then assigned to
// parts in a single walk. Once maxParts is reached, further resets keep
// assigning to the last part. Rows without a session index never trigger a
// boundary and never update the comparison point.
func SplitByReset(rows []Row, maxParts int) [][]Row {
	if maxParts < 1 {
		maxParts = 1
	}
	parts := make([][]Row, maxParts)

	part := 0
	prev := -1
	for _, row := range SortedByDate(rows) {
		idx, ok := row.SessionIndex()
		if ok && prev >= 0 && idx < prev && part < maxParts-1 {
			part++
		}
		parts[part] = append(parts[part], row)
		if ok {
			prev = idx
		}
	}
	return parts
}
