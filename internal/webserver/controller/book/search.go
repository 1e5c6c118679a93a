package book

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dmoreno/shelfkeeper/internal/library"
)

// Search looks the query up in titles and authors, optionally narrowed to an
// exact publication year. Without a query and without a year filter the bare
// form is shown and nothing is searched.
func (a *Controller) Search(c *fiber.Ctx) error {
	keywords := c.Query("search")
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		year = library.MinYear
	}

	if keywords == "" && year <= library.MinYear {
		return c.Render("views/search", fiber.Map{
			"Title": "Search for a book",
		}, "views/layout")
	}

	lib, err := a.store.Load()
	if err != nil {
		return err
	}
	results := lib.Search(keywords, year)

	return c.Render("views/search", fiber.Map{
		"Title":    "Search for a book",
		"Keywords": keywords,
		"Year":     year,
		"Results":  results,
		"Total":    len(results),
	}, "views/layout")
}
