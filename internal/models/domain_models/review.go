package domain_models

// Review is one customer review in the simulated feed.
type Review struct {
	ID     int64
	Rating int // 1..5
	Title  string
	Body   string
	Author string
}
