package webserver

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dmoreno/shelfkeeper/internal/store"
	"github.com/dmoreno/shelfkeeper/internal/webserver/controller/book"
)

type Controllers struct {
	Books        *book.Controller
	ErrorHandler func(c *fiber.Ctx, err error) error
}

func SetupControllers(s *store.Store) Controllers {
	return Controllers{
		Books: book.NewController(s),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}

			message := "Something went wrong."
			var corruptErr *store.CorruptStoreError
			var storageErr *store.StorageError
			switch {
			case errors.As(err, &corruptErr):
				message = "The library document is damaged and could not be read."
			case errors.As(err, &storageErr):
				message = "The library document could not be accessed."
			case code == fiber.StatusNotFound:
				message = "Page not found."
			}
			if code == fiber.StatusInternalServerError {
				log.Println(err)
			}

			return c.Status(code).Render("views/error", fiber.Map{
				"Title":       "Error",
				"Description": message,
			}, "views/layout")
		},
	}
}
