package main

import (
	"encoding/csv"
	"errors"
	"io"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const noGenres = "(no genres listed)"

// titleYear matches the "(1995)" suffix MovieLens appends to titles.
var titleYear = regexp.MustCompile(`\s*\((\d{4})\)\s*$`)

type columns struct {
	title, genres                   int
	runtime, releaseDate, languages int
}

// readCatalog parses a MovieLens style movies.csv. title and genres are
// required columns; runtime, release_date and languages are optional and
// pipe separated like genres. Rows without a title or a release date (taken
// from the title year when the column is absent) are skipped.
func readCatalog(r io.Reader, defaultLanguage string, limit int) ([]movie.Movie, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	cols, err := parseHeader(reader)
	if err != nil {
		return nil, err
	}

	var movies []movie.Movie
	for limit <= 0 || len(movies) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		m, ok := parseRecord(record, cols, defaultLanguage)
		if !ok {
			continue
		}
		movies = append(movies, m)
	}

	return movies, nil
}

func parseHeader(reader *csv.Reader) (columns, error) {
	header, err := reader.Read()
	if err != nil {
		return columns{}, err
	}

	cols := columns{title: -1, genres: -1, runtime: -1, releaseDate: -1, languages: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			cols.title = i
		case "genres":
			cols.genres = i
		case "runtime":
			cols.runtime = i
		case "release_date":
			cols.releaseDate = i
		case "languages":
			cols.languages = i
		}
	}
	if cols.title == -1 || cols.genres == -1 {
		return columns{}, errors.New("missing required columns in csv header")
	}

	return cols, nil
}

func parseRecord(record []string, cols columns, defaultLanguage string) (movie.Movie, bool) {
	title, year := splitTitle(field(record, cols.title))
	if title == "" {
		return movie.Movie{}, false
	}

	m := movie.Movie{Title: title}
	if year > 0 {
		m.ReleaseDate = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if raw := field(record, cols.releaseDate); raw != "" {
		if d, err := time.Parse(time.DateOnly, raw); err == nil {
			m.ReleaseDate = d
		}
	}
	if raw := field(record, cols.runtime); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			m.Duration = n
		}
	}
	if m.ReleaseDate.IsZero() {
		return movie.Movie{}, false
	}

	for _, name := range splitList(field(record, cols.genres)) {
		if name == noGenres {
			continue
		}
		m.Genres = append(m.Genres, genre.Genre{Name: name})
	}

	languages := splitList(field(record, cols.languages))
	if len(languages) == 0 && defaultLanguage != "" {
		languages = []string{defaultLanguage}
	}
	for _, name := range languages {
		m.Languages = append(m.Languages, movie.Language{Name: name})
	}

	return m, true
}

// splitTitle separates "Heat (1995)" into "Heat" and 1995. year is 0 when
// the title carries no year.
func splitTitle(raw string) (string, int) {
	match := titleYear.FindStringSubmatchIndex(raw)
	if match == nil {
		return strings.TrimSpace(raw), 0
	}
	year, _ := strconv.Atoi(raw[match[2]:match[3]])
	return strings.TrimSpace(raw[:match[0]]), year
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
