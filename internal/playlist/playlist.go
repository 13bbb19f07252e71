package playlist

import "time"

// Track references a single playable audio file.
// Identity is the path; the same path may appear more than once in a
// playlist, in which case selection is by position.
type Track struct {
	Path     string // file path for playback
	Title    string
	Artist   string
	Album    string
	Size     int64 // file size in bytes (0 if unknown)
	Duration time.Duration
}

// Playlist holds an ordered collection of tracks.
type Playlist struct {
	tracks []Track
}

// New creates a new empty playlist.
func New() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends tracks to the playlist, preserving the given order.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Remove removes the track at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
	return true
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// TotalSize returns the summed file size of all tracks in bytes.
func (p *Playlist) TotalSize() int64 {
	var total int64
	for i := range p.tracks {
		total += p.tracks[i].Size
	}
	return total
}

// Move moves the track at fromIndex to toIndex.
// The move is a remove followed by an insert into the shortened list, so
// with toIndex > fromIndex the track lands after the element that occupied
// toIndex before the removal.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.tracks) {
		return false
	}
	if toIndex < 0 || toIndex >= len(p.tracks) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	track := p.tracks[fromIndex]
	// Remove from old position
	p.tracks = append(p.tracks[:fromIndex], p.tracks[fromIndex+1:]...)
	// Insert at new position
	p.tracks = append(p.tracks[:toIndex], append([]Track{track}, p.tracks[toIndex:]...)...)
	return true
}
