package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"moviecatalog/errs"
	"moviecatalog/movie"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

var (
	ErrInvalidBody = errs.Errorf(errs.EINVALID, "invalid request body")
	ErrInvalidID   = errs.Errorf(errs.EINVALID, "invalid id")

	errInvalidDate = errors.New("release_date must be YYYY-MM-DD or RFC 3339")
)

type GenreRequest struct {
	Name string `json:"name"`
}

// UpdateMovieRequest lists every movie field a client may change. Unknown
// fields are rejected when decoding.
type UpdateMovieRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,notblank,max=255"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,min=0"`
	ReleaseDate *Date   `json:"release_date,omitempty"`
}

func (r UpdateMovieRequest) ToPatch() movie.Patch {
	p := movie.Patch{
		Title:    r.Title,
		Duration: r.Duration,
	}
	if r.ReleaseDate != nil {
		t := r.ReleaseDate.Time
		p.ReleaseDate = &t
	}
	return p
}

// Date accepts either a calendar date (2006-01-02) or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return errInvalidDate
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.DateOnly))
}

// bindStrict decodes the JSON body into v, rejecting unknown fields and
// trailing data.
func bindStrict(c echo.Context, v interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return ErrInvalidBody
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errs.Wrap(err, errs.EINVALID, "invalid request body: "+describeDecodeError(err))
	}
	if dec.More() {
		return ErrInvalidBody
	}
	return nil
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, errInvalidDate):
		return err.Error()
	case errors.As(err, &typeErr):
		return typeErr.Field + " has wrong type"
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return "unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field ")
	case errors.Is(err, io.EOF):
		return "empty body"
	default:
		return "malformed JSON"
	}
}

func bindGenre(c echo.Context) (GenreRequest, error) {
	var req GenreRequest
	if err := c.Bind(&req); err != nil {
		return req, ErrInvalidBody
	}
	return req, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
