package profile

// Stats summarizes the samples of one span. All durations are
// nanoseconds. Mean and MAD use truncating integer division.
type Stats struct {
	Count int64
	Min   int64
	Max   int64
	Mean  int64
	MAD   int64
	Total int64
}

// Compute derives Stats from a span's samples. Count is never zero
// (an empty sample set counts as one), so the divisions are total.
func Compute(samples []int64) Stats {
	count := int64(len(samples))
	if count < 1 {
		count = 1
	}
	s := Stats{Count: count}
	for i, v := range samples {
		if i == 0 || v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Total += v
	}
	s.Mean = s.Total / count
	var dev int64
	for _, v := range samples {
		d := v - s.Mean
		if d < 0 {
			d = -d
		}
		dev += d
	}
	s.MAD = dev / count
	return s
}

// ComputeAll derives Stats for every recorded span, keyed by span
// name. The TotalSpan entry carries the outer wall-clock time.
func ComputeAll(samples map[string][]int64) map[string]Stats {
	out := make(map[string]Stats, len(samples))
	for name, ss := range samples {
		out[name] = Compute(ss)
	}
	return out
}
