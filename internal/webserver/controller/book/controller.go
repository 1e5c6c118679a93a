package book

import (
	"github.com/dmoreno/shelfkeeper/internal/library"
)

// Storage defines the record store operations the shell depends on. Every
// action performs one load, at most one mutation and one save before
// rendering; the shell never keeps a library value across requests.
type Storage interface {
	Load() (library.Library, error)
	Save(lib library.Library) error
}

type Controller struct {
	store Storage
}

func NewController(store Storage) *Controller {
	return &Controller{store: store}
}
