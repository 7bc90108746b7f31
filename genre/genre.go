package genre

import (
	"moviecatalog/errs"
	"strings"
)

var (
	ErrNameRequired  = errs.Errorf(errs.EINVALID, "Genre name needs to be informed")
	ErrInvalidID     = errs.Errorf(errs.EINVALID, "invalid genre id")
	ErrGenreNotFound = errs.Errorf(errs.ENOTFOUND, "Genre not found")
	ErrNameTaken     = errs.Errorf(errs.ECONFLICT, "This genre name already exists.")
)

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NormalizeName trims the name and rejects blank values.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

func validateID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}
