package response_models

type ChangeEventResponse struct {
	ID        string `json:"id"`
	Sequence  int64  `json:"sequence"`
	Step      int    `json:"step"`
	TraceID   string `json:"trace_id,omitempty"`
	Action    string `json:"action"`
	ReviewID  int64  `json:"review_id,omitempty"`
	Field     string `json:"field,omitempty"`
	Position  int    `json:"position"`
	Skipped   bool   `json:"skipped"`
	CreatedAt string `json:"created_at"`
}

type FeedStatsResponse struct {
	Requests         int64 `json:"requests"`
	NextReviewID     int64 `json:"next_review_id"`
	PublishedReviews int   `json:"published_reviews"`
}
