package report

// LinkRequirements joins accumulated hours onto the requirement records:
// actualHours is the sum of hours booked against the requirement id, and
// actualCost converts that to money at the configured hourly rate. The
// input slice is not mutated; linking runs again whenever either dataset
// changes.
func LinkRequirements(requirements []RequirementRecord, hours []HoursRecord, hourlyRate float64) []RequirementRecord {
	sums := make(map[string]float64)
	for _, rec := range hours {
		if rec.RequirementID == "" {
			continue
		}
		sums[rec.RequirementID] += rec.Hours
	}

	linked := make([]RequirementRecord, len(requirements))
	for i, req := range requirements {
		req.ActualHours = sums[req.ID]
		req.ActualCost = req.ActualHours * hourlyRate
		linked[i] = req
	}
	return linked
}

// StatusCounts tallies requirements per status bucket.
func StatusCounts(requirements []RequirementRecord) map[string]int {
	counts := make(map[string]int)
	for _, req := range requirements {
		counts[req.Status]++
	}
	return counts
}
