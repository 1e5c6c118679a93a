package library

// Stats aggregates the read/unread breakdown of a library.
type Stats struct {
	Total       int
	Read        int
	Unread      int
	ReadPercent float64
	TitleCounts []TitleCount
}

// TitleCount is one slice of the title distribution, in first-appearance
// order so repeated Statistics calls render the chart identically.
type TitleCount struct {
	Title string
	Count int
}

// Statistics computes the aggregate counters over the whole library. An
// empty library yields all zeroes, including the percentage.
func (l Library) Statistics() Stats {
	stats := Stats{Total: len(l)}

	seen := make(map[string]int, len(l))
	for _, book := range l {
		if book.Read {
			stats.Read++
		}
		if at, ok := seen[book.Title]; ok {
			stats.TitleCounts[at].Count++
			continue
		}
		seen[book.Title] = len(stats.TitleCounts)
		stats.TitleCounts = append(stats.TitleCounts, TitleCount{Title: book.Title, Count: 1})
	}

	stats.Unread = stats.Total - stats.Read
	if stats.Total > 0 {
		stats.ReadPercent = float64(stats.Read) / float64(stats.Total) * 100
	}
	return stats
}
