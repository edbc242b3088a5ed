package parsers

import (
	"io"

	"github.com/username/dishboard/src/models"
)

type Parser interface {
	Parse(r io.Reader) ([]models.SalesRecord, error)
}
