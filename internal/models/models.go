package models

import "time"

// Point is a published point of sale.
type Point struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Hours   string  `json:"hours"`
	Comment string  `json:"comment"`
}

// Suggestion is a publicly submitted point awaiting moderation. Its id is
// queue-local and never reused for the published point created on approval.
type Suggestion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Hours       string    `json:"hours"`
	Comment     string    `json:"comment"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// PointDraft carries the fields of a point to be created or suggested.
// Lat and Lng are pointers so a missing coordinate in a request body is
// distinguishable from zero.
type PointDraft struct {
	Name    string   `json:"name"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address string   `json:"address"`
	Phone   string   `json:"phone"`
	Hours   string   `json:"hours"`
	Comment string   `json:"comment"`
}

// PointPatch is a partial update. Nil fields keep the stored value.
type PointPatch struct {
	Name    *string  `json:"name"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address *string  `json:"address"`
	Phone   *string  `json:"phone"`
	Hours   *string  `json:"hours"`
	Comment *string  `json:"comment"`
}

// Position is a caller location (WGS 84).
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Filters narrows a ranked point set.
type Filters struct {
	// Query is matched as a lower-cased substring of name+address+comment.
	// Empty means no text filter.
	Query string

	// MaxDistanceKm drops points farther than this many kilometers from
	// the origin. Nil or non-finite means no distance filter.
	MaxDistanceKm *float64
}

// RankedPoint is a point annotated with its distance in meters from the
// request origin. Distance is nil when no origin was given.
type RankedPoint struct {
	Point
	Distance *float64 `json:"distance"`
}
