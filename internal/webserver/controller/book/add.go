package book

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dmoreno/shelfkeeper/internal/library"
)

func (a *Controller) AddForm(c *fiber.Ctx) error {
	return c.Render("views/add", fiber.Map{
		"Title": "Add a new book",
	}, "views/layout")
}

// Add captures the submitted fields, validates them at this boundary and
// appends the book to the library. The record store itself does not
// re-validate.
func (a *Controller) Add(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.FormValue("year"))
	if err != nil {
		year = 0
	}

	newBook := library.Book{
		Title:  c.FormValue("title"),
		Author: c.FormValue("author"),
		Year:   year,
		Genre:  c.FormValue("genre"),
		Read:   c.FormValue("read") == "on",
	}

	if err := newBook.Validate(); err != nil {
		warning := "Please fill in all the fields."
		if errors.Is(err, library.ErrYearOutOfRange) {
			warning = fmt.Sprintf("Publication year must be between %d and %d.", library.MinYear, library.MaxYear)
		}
		return c.Render("views/add", fiber.Map{
			"Title":   "Add a new book",
			"Warning": warning,
			"Book":    newBook,
		}, "views/layout")
	}

	lib, err := a.store.Load()
	if err != nil {
		return err
	}
	if err := a.store.Save(lib.Add(newBook)); err != nil {
		return err
	}

	return c.Render("views/add", fiber.Map{
		"Title":   "Add a new book",
		"Message": fmt.Sprintf("Book '%s' added!", newBook.Title),
	}, "views/layout")
}
