package database

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/facette/natsort"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// VenueSummary is one venue row in the grouped directory.
type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// LocationGroup collects the venues sharing one (city, state) pair.
type LocationGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// ShowListing is one row of the show board: a show joined with the name of
// its venue and the name and image of its artist.
type ShowListing struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       int64  `json:"start_time"`
}

// VenueDirectory returns every venue grouped by (city, state). Each venue
// carries the number of its shows starting strictly after now. Groups are
// ordered by city then state; venues within a group are in natural name
// order, then by id.
func VenueDirectory(db *sql.DB, now time.Time) ([]LocationGroup, error) {
	queryBuilder := psql.Select("v.id", "v.name", "v.city", "v.state").
		Column(sq.Expr(
			"COALESCE(SUM(CASE WHEN s.start_time > ? THEN 1 ELSE 0 END), 0) AS num_upcoming",
			now.Unix(),
		)).
		From("venues v").
		LeftJoin("shows s ON s.venue_id = v.id").
		GroupBy("v.id", "v.name", "v.city", "v.state").
		OrderBy("v.city ASC", "v.state ASC", "v.id ASC")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for VenueDirectory: %w", err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query venue directory: %w", err)
	}
	defer rows.Close()

	groups := []LocationGroup{}
	for rows.Next() {
		var (
			summary     VenueSummary
			city, state string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &city, &state, &summary.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("failed to scan venue directory row: %w", err)
		}

		// rows arrive ordered by city then state, so venues for one
		// location are contiguous
		if n := len(groups); n > 0 && groups[n-1].City == city && groups[n-1].State == state {
			groups[n-1].Venues = append(groups[n-1].Venues, summary)
		} else {
			groups = append(groups, LocationGroup{City: city, State: state, Venues: []VenueSummary{summary}})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate venue directory rows: %w", err)
	}

	for i := range groups {
		venues := groups[i].Venues
		sort.SliceStable(venues, func(a, b int) bool {
			if venues[a].Name != venues[b].Name {
				return natsort.Compare(venues[a].Name, venues[b].Name)
			}
			return venues[a].ID < venues[b].ID
		})
	}

	return groups, nil
}

// ShowBoard lists every show joined with its artist and venue, ordered by
// start time ascending, then by show id.
func ShowBoard(db *sql.DB) ([]ShowListing, error) {
	queryBuilder := psql.Select(
		"s.venue_id", "v.name", "s.artist_id", "a.name",
		"COALESCE(a.image_link, '')", "s.start_time",
	).
		From("shows s").
		Join("venues v ON v.id = s.venue_id").
		Join("artists a ON a.id = s.artist_id").
		OrderBy("s.start_time ASC", "s.id ASC")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for ShowBoard: %w", err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query show board: %w", err)
	}
	defer rows.Close()

	listings := []ShowListing{}
	for rows.Next() {
		var listing ShowListing
		err := rows.Scan(
			&listing.VenueID, &listing.VenueName,
			&listing.ArtistID, &listing.ArtistName,
			&listing.ArtistImageLink, &listing.StartTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan show board row: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate show board rows: %w", err)
	}

	return listings, nil
}
