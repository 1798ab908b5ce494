package domain

// Review is a synthetic airline review. A record is immutable once built
// and is discarded after being rendered.
type Review struct {
	ReviewID string `json:"review_id"` // UUID v4 text form
	Airline  string `json:"airline"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"` // 1..5
	Date     string `json:"date"`   // YYYY-MM-DD, within the current year
	Title    string `json:"title"`
	Body     string `json:"body"`
}
