package book

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmoreno/shelfkeeper/internal/library"
)

// titleShare is one bar of the distribution-by-title breakdown.
type titleShare struct {
	Title   string
	Count   int
	Percent float64
}

// Statistics renders the aggregate counters plus two breakdowns: the share
// of the collection each title holds and read versus unread counts.
func (a *Controller) Statistics(c *fiber.Ctx) error {
	lib, err := a.store.Load()
	if err != nil {
		return err
	}
	stats := lib.Statistics()

	shares := make([]titleShare, 0, len(stats.TitleCounts))
	for _, tc := range stats.TitleCounts {
		shares = append(shares, titleShare{
			Title:   tc.Title,
			Count:   tc.Count,
			Percent: float64(tc.Count) / float64(stats.Total) * 100,
		})
	}

	return c.Render("views/statistics", fiber.Map{
		"Title":         "Library statistics",
		"Stats":         stats,
		"TitleShares":   shares,
		"UnreadPercent": unreadPercent(stats),
	}, "views/layout")
}

func unreadPercent(stats library.Stats) float64 {
	if stats.Total == 0 {
		return 0
	}
	return float64(stats.Unread) / float64(stats.Total) * 100
}
