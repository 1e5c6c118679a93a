package book

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (a *Controller) RemoveForm(c *fiber.Ctx) error {
	return c.Render("views/remove", fiber.Map{
		"Title": "Remove a book",
	}, "views/layout")
}

// Remove drops every book matching the submitted title, ignoring case.
// Duplicate titles are all removed in one action; the count reported to the
// user reflects that.
func (a *Controller) Remove(c *fiber.Ctx) error {
	titleQuery := c.FormValue("title")

	lib, err := a.store.Load()
	if err != nil {
		return err
	}
	lib, removed := lib.Remove(titleQuery)
	if err := a.store.Save(lib); err != nil {
		return err
	}

	if removed == 0 {
		return c.Render("views/remove", fiber.Map{
			"Title":   "Remove a book",
			"Warning": "Book not found.",
		}, "views/layout")
	}

	return c.Render("views/remove", fiber.Map{
		"Title":   "Remove a book",
		"Message": fmt.Sprintf("Book '%s' removed.", titleQuery),
		"Removed": removed,
	}, "views/layout")
}
