package sessions

import "github.com/KirkDiggler/deejay/internal/models"

// TrackQueue is an insertion-ordered queue of loaded tracks awaiting playback.
// Playback order equals enqueue order: Enqueue appends to the tail and Dequeue
// removes from the head. The zero value is an empty queue ready for use.
//
// TrackQueue is not safe for concurrent use on its own; callers go through the
// Directory, which serializes access per guild.
type TrackQueue struct {
	tracks []models.Track
}

// Enqueue appends tracks to the tail of the queue, preserving their order
func (q *TrackQueue) Enqueue(tracks ...models.Track) {
	q.tracks = append(q.tracks, tracks...)
}

// Dequeue removes and returns the track at the head of the queue. The second
// return value is false when the queue is empty.
func (q *TrackQueue) Dequeue() (models.Track, bool) {
	if len(q.tracks) == 0 {
		return models.Track{}, false
	}

	track := q.tracks[0]
	q.tracks = q.tracks[1:]
	return track, true
}

// Len returns the number of tracks waiting in the queue
func (q *TrackQueue) Len() int {
	return len(q.tracks)
}
