package model

// TypeTrack is the type discriminator on every emitted feed record
const TypeTrack = "track"

// DefaultRegions returns the region list attached to every emitted track
func DefaultRegions() []string {
	return []string{"US"}
}

// FeedArtist is the nested artist object inside a feed line
type FeedArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FeedTrack is one line of the ingestion feed. Field declaration order fixes
// the key order produced by encoding/json.
type FeedTrack struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	ISRC    string     `json:"ISRC"`
	Artist  FeedArtist `json:"artist"`
	Type    string     `json:"type"`
	Regions []string   `json:"regions"`
}
