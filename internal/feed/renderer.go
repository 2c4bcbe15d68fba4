package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"reviewfeed/internal/models/domain_models"
)

const (
	reviewAuthorURI = "https://itunes.apple.com/us/reviews/id326193131"
	reviewLinkHref  = "https://itunes.apple.com/us/review?id=389801252&type=Purple%20Software"
	appVersion      = "21.0"
)

type label struct {
	Label string `json:"label"`
}

type reviewAuthor struct {
	URI   label  `json:"uri"`
	Name  label  `json:"name"`
	Label string `json:"label"`
}

type reviewContent struct {
	Label      string `json:"label"`
	Attributes struct {
		Type string `json:"type"`
	} `json:"attributes"`
}

type reviewLink struct {
	Attributes struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"attributes"`
}

type reviewContentType struct {
	Attributes struct {
		Term  string `json:"term"`
		Label string `json:"label"`
	} `json:"attributes"`
}

// reviewEntry fields are declared in wire order.
type reviewEntry struct {
	Author      reviewAuthor      `json:"author"`
	Version     label             `json:"im:version"`
	Rating      label             `json:"im:rating"`
	ID          label             `json:"id"`
	Title       label             `json:"title"`
	Content     reviewContent     `json:"content"`
	Link        reviewLink        `json:"link"`
	VoteSum     label             `json:"im:voteSum"`
	ContentType reviewContentType `json:"im:contentType"`
	VoteCount   label             `json:"im:voteCount"`
}

func newReviewEntry(r domain_models.Review) reviewEntry {
	e := reviewEntry{
		Author: reviewAuthor{
			URI:  label{reviewAuthorURI},
			Name: label{r.Author},
		},
		Version:   label{appVersion},
		Rating:    label{strconv.Itoa(r.Rating)},
		ID:        label{strconv.FormatInt(r.ID, 10)},
		Title:     label{r.Title},
		VoteSum:   label{"0"},
		VoteCount: label{"0"},
	}
	e.Content.Label = r.Body
	e.Content.Attributes.Type = "text"
	e.Link.Attributes.Rel = "related"
	e.Link.Attributes.Href = reviewLinkHref
	e.ContentType.Attributes.Term = "Application"
	e.ContentType.Attributes.Label = "Application"
	return e
}

// Render writes the whole customer-reviews document for reviews, in order.
func Render(reviews []domain_models.Review) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(feedHeader) + len(feedFooter) + len(reviews)*1024)
	buf.WriteString(feedHeader)

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, r := range reviews {
		buf.WriteByte(',')
		if err := enc.Encode(newReviewEntry(r)); err != nil {
			return nil, fmt.Errorf("encode review %d: %w", r.ID, err)
		}
		// Encode terminates every value with a newline.
		buf.Truncate(buf.Len() - 1)
	}

	buf.WriteString(feedFooter)
	return buf.Bytes(), nil
}
