package model

// Artist is one artist element read from an RDS extract
type Artist struct {
	ArtistID string
	Name     string
}

// Track is one track element read from an RDS extract. ArtistID may be empty;
// tracks without an artist reference are excluded from the feed.
type Track struct {
	TrackID  string
	Name     string
	ISRC     string
	ArtistID string
}
