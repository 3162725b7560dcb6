package models

// Track represents a playable track loaded from the audio node. The ID is the
// node-issued token and is passed back verbatim in play directives.
type Track struct {
	// ID is the opaque track token issued by the audio node
	ID string `json:"track"`

	// Info holds the display metadata for the track
	Info TrackInfo `json:"info"`
}

// TrackInfo holds the display metadata attached to a loaded track
type TrackInfo struct {
	// Identifier is the source identifier of the track (e.g. a video ID)
	Identifier string `json:"identifier"`

	// Title of the track
	Title string `json:"title"`

	// Author of the track
	Author string `json:"author"`

	// Length of the track in milliseconds
	Length int64 `json:"length"`

	// URI is the source location of the track
	URI string `json:"uri"`

	// IsStream is true when the track is a live stream
	IsStream bool `json:"isStream"`
}

// LoadResult is the audio node's response to a track search
type LoadResult struct {
	// LoadType describes how the identifier was interpreted by the node
	LoadType string `json:"loadType"`

	// Tracks holds the matching tracks, best match first
	Tracks []Track `json:"tracks"`
}
