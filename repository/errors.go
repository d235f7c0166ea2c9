package repository

import "errors"

// Validation failures raised before any write is attempted. Handlers map
// these to a message and a redirect back to the originating form, unlike
// persistence failures which surface as a 500.
var (
	ErrUnknownArtist = errors.New("artist id does not reference an existing artist")
	ErrUnknownVenue  = errors.New("venue id does not reference an existing venue")
)
