package domain

import "time"

// Source identifies where a captured item originally came from
type Source string

const (
	SourceClipboard  Source = "clipboard"
	SourceScreenshot Source = "screenshot"
)

// Filter selects which slice of the index a query runs against
type Filter string

const (
	FilterAll       Filter = "all"
	FilterText      Filter = "text"
	FilterImages    Filter = "images"
	FilterClipboard Filter = "clipboard"
)

// Filters lists the filter modes in cycle order for the UI
var Filters = []Filter{FilterAll, FilterText, FilterImages, FilterClipboard}

// SourceRestriction maps a filter mode to the source restriction used by
// the recent-items view. Only the images and clipboard filters restrict
// the source; text and all return everything.
func (f Filter) SourceRestriction() Source {
	switch f {
	case FilterImages:
		return SourceScreenshot
	case FilterClipboard:
		return SourceClipboard
	default:
		return ""
	}
}

// TimeRange restricts results to items captured within a recent window
type TimeRange string

const (
	RangeAll   TimeRange = "all"
	RangeHour  TimeRange = "hour"
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// TimeRanges lists the ranges in cycle order for the UI
var TimeRanges = []TimeRange{RangeAll, RangeHour, RangeDay, RangeWeek, RangeMonth}

// LowerBound returns the unix timestamp items must be newer than, or 0
// when the range imposes no bound.
func (r TimeRange) LowerBound(now time.Time) int64 {
	switch r {
	case RangeHour:
		return now.Add(-time.Hour).Unix()
	case RangeDay:
		return now.Add(-24 * time.Hour).Unix()
	case RangeWeek:
		return now.Add(-7 * 24 * time.Hour).Unix()
	case RangeMonth:
		return now.Add(-30 * 24 * time.Hour).Unix()
	default:
		return 0
	}
}

// QueryState is the user's current query input. It has no lifecycle of its
// own; it is overwritten in place and read when a request is built.
type QueryState struct {
	Text   string
	Filter Filter
	Range  TimeRange
}

// DefaultQuery returns the empty query shown when the overlay opens
func DefaultQuery() QueryState {
	return QueryState{Filter: FilterAll, Range: RangeAll}
}

// Item is an immutable snapshot of one captured entry as returned by the
// backend. The active result list is always replaced wholesale, never
// patched item by item.
type Item struct {
	ID           int64    `json:"id"`
	Text         string   `json:"text"`
	Source       Source   `json:"source"`
	BlobURI      string   `json:"blob_uri,omitempty"`
	CreatedTS    int64    `json:"created_ts"`
	ReadableTime string   `json:"readable_time"`
	Score        *float64 `json:"score,omitempty"`
	Preview      string   `json:"preview,omitempty"`
}

// Stats holds the index counters reported by the backend
type Stats struct {
	TotalItems      int `json:"total_items"`
	ClipboardItems  int `json:"clipboard_items"`
	ScreenshotItems int `json:"screenshot_items"`
	TextVectors     int `json:"text_vectors"`
	ImageVectors    int `json:"image_vectors"`
}
