package challenge

import "time"

// Info identifies one selectable challenge: the storage namespace key
// and the label the challenge picker shows.
type Info struct {
	Key   string
	Label string
}

// Metadata is the optional per-challenge status document. Any of it
// may be absent in the store; an absent document is not an error.
type Metadata struct {
	StartDate  time.Time
	EndDate    time.Time
	IsComplete bool
	LastUpdate *time.Time
}
