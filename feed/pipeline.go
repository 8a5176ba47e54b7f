// Package feed converts an RDS catalog extract into a newline-delimited JSON
// ingestion feed. A run makes two independent passes over the source
// document: the first builds an artist id to name table, the second filters
// and emits tracks that join against it.
package feed

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rdstools/rdsfeed/model"
	"github.com/rdstools/rdsfeed/progress"
	"github.com/rdstools/rdsfeed/xmlstream"
)

// isrcPrefix is the vendor tag some extracts prepend to ISRCs. It is only
// stripped when it appears at the very start of the field.
const isrcPrefix = "tra_isrc."

const (
	phaseArtists = "artists"
	phaseTracks  = "tracks"
)

// BuildArtistTable streams artist elements from r and returns a mapping from
// artist id to display name. The first occurrence of an id wins; later
// duplicates are logged and ignored.
func BuildArtistTable(r io.Reader, p progress.Reporter) (map[string]string, error) {
	artists := make(map[string]string)
	sc := xmlstream.NewScanner(r, "artist")

	count := 0
	for sc.Scan() {
		el := sc.Element()

		id, ok := el.ChildText("artistId")
		if !ok {
			return nil, &MissingFieldError{Element: "artist", Field: "artistId"}
		}
		name, ok := el.ChildText("name")
		if !ok {
			return nil, &MissingFieldError{Element: "artist", Field: "name"}
		}

		artist := model.Artist{
			ArtistID: Sanitize(id),
			Name:     Sanitize(name),
		}

		if kept, dup := artists[artist.ArtistID]; dup {
			slog.Warn("Duplicate artist id, keeping first occurrence", "artistId", artist.ArtistID, "kept", kept, "ignored", artist.Name)
		} else {
			artists[artist.ArtistID] = artist.Name
		}

		count++
		p.Step(phaseArtists, count)
	}
	if err := sc.Err(); err != nil {
		return nil, &MalformedInputError{Offset: sc.InputOffset(), Err: err}
	}

	p.Done(phaseArtists, count)
	return artists, nil
}

// EmitTracks streams track elements from r, filters them against the artist
// table, and writes one JSON line per qualifying track to w. It returns the
// number of lines written.
//
// A track with no artistId child is not part of the feed and is skipped
// silently, as is a track whose artist is absent from the table or whose
// ISRC is blank. Once a track carries an artistId, its trackId, name and
// isrc fields are required.
func EmitTracks(r io.Reader, artists map[string]string, w io.Writer, p progress.Reporter) (int, error) {
	sc := xmlstream.NewScanner(r, "track")

	count := 0
	emitted := 0
	for sc.Scan() {
		el := sc.Element()
		count++
		p.Step(phaseTracks, count)

		artistID, ok := el.ChildText("artistId")
		if !ok {
			continue
		}

		trackID, ok := el.ChildText("trackId")
		if !ok {
			return emitted, &MissingFieldError{Element: "track", Field: "trackId"}
		}
		name, ok := el.ChildText("name")
		if !ok {
			return emitted, &MissingFieldError{Element: "track", Field: "name"}
		}
		isrc, ok := el.ChildText("isrc")
		if !ok {
			return emitted, &MissingFieldError{Element: "track", Field: "isrc"}
		}

		track := model.Track{
			TrackID:  Sanitize(trackID),
			Name:     Sanitize(name),
			ISRC:     strings.TrimSpace(Sanitize(isrc)),
			ArtistID: Sanitize(artistID),
		}

		artistName, known := artists[track.ArtistID]
		if !known || track.ISRC == "" {
			continue
		}

		line, err := json.Marshal(model.FeedTrack{
			ID:      track.TrackID,
			Name:    track.Name,
			ISRC:    strings.TrimPrefix(track.ISRC, isrcPrefix),
			Artist:  model.FeedArtist{ID: track.ArtistID, Name: artistName},
			Type:    model.TypeTrack,
			Regions: model.DefaultRegions(),
		})
		if err != nil {
			return emitted, fmt.Errorf("encoding track %s: %w", track.TrackID, err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return emitted, &OutputWriteError{Err: err}
		}
		emitted++
	}
	if err := sc.Err(); err != nil {
		return emitted, &MalformedInputError{Offset: sc.InputOffset(), Err: err}
	}

	p.Done(phaseTracks, count)
	return emitted, nil
}

// Convert runs the full conversion: one pass over inputPath to build the
// artist table, then a second pass to emit qualifying tracks to outputPath.
// It returns the artist count and the number of feed lines written.
func Convert(inputPath, outputPath string, p progress.Reporter) (int, int, error) {
	artists, err := buildFromFile(inputPath, p)
	if err != nil {
		return 0, 0, err
	}
	slog.Info("Built artist table", "artists", len(artists))

	emitted, err := emitToFile(inputPath, outputPath, artists, p)
	return len(artists), emitted, err
}

func buildFromFile(inputPath string, p progress.Reporter) (map[string]string, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer in.Close()

	return BuildArtistTable(bufio.NewReader(in), p)
}

func emitToFile(inputPath, outputPath string, artists map[string]string, p progress.Reporter) (int, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, &OutputWriteError{Path: outputPath, Err: err}
	}

	w := bufio.NewWriter(out)
	emitted, err := EmitTracks(bufio.NewReader(in), artists, w, p)

	// Flush and close on every path; a partially written file after a fatal
	// error is the operator's signal to fix the source and re-run.
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = &OutputWriteError{Path: outputPath, Err: ferr}
	}
	if cerr := out.Close(); cerr != nil && err == nil {
		err = &OutputWriteError{Path: outputPath, Err: cerr}
	}
	return emitted, err
}
