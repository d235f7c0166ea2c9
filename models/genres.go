package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// genres are stored in a single TEXT column joined on this delimiter.
// The delimiter never leaves this file; everything above the persistence
// boundary sees a plain list of strings.
const genreDelimiter = ";"

// GenreList is an ordered list of genre names.
type GenreList []string

// GenreOptions are the genres offered by the create and edit forms.
var GenreOptions = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre",
	"Pop", "Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

// Contains reports whether name is in the list.
func (g GenreList) Contains(name string) bool {
	for _, genre := range g {
		if genre == name {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer.
func (g GenreList) Value() (driver.Value, error) {
	return strings.Join(g, genreDelimiter), nil
}

// Scan implements sql.Scanner.
func (g *GenreList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*g = nil
		return nil
	case string:
		*g = splitGenres(v)
		return nil
	case []byte:
		*g = splitGenres(string(v))
		return nil
	default:
		return fmt.Errorf("cannot scan %T into GenreList", src)
	}
}

func splitGenres(s string) GenreList {
	if s == "" {
		return GenreList{}
	}
	return GenreList(strings.Split(s, genreDelimiter))
}
