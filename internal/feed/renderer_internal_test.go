package feed

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reviewfeed/internal/models/domain_models"
)

type labelDoc struct {
	Label string `json:"label"`
}

type feedDoc struct {
	Feed struct {
		Author  map[string]labelDoc          `json:"author"`
		Entry   []map[string]json.RawMessage `json:"entry"`
		Updated labelDoc                     `json:"updated"`
		Rights  labelDoc                     `json:"rights"`
		Title   labelDoc                     `json:"title"`
		Icon    labelDoc                     `json:"icon"`
		Link    []json.RawMessage            `json:"link"`
		ID      labelDoc                     `json:"id"`
	} `json:"feed"`
}

func decodeFeed(t *testing.T, body []byte) feedDoc {
	t.Helper()
	var doc feedDoc
	require.True(t, json.Valid(body), "document is not valid JSON")
	require.NoError(t, json.Unmarshal(body, &doc))
	return doc
}

func entryLabel(t *testing.T, entry map[string]json.RawMessage, key string) string {
	t.Helper()
	var l labelDoc
	require.NoError(t, json.Unmarshal(entry[key], &l))
	return l.Label
}

func TestRenderReviewEntryWireFormat(t *testing.T) {
	body, err := Render([]domain_models.Review{{ID: 7, Rating: 3, Title: "Nice", Body: "Works well.", Author: "Jane"}})
	require.NoError(t, err)

	want := `{"author":{"uri":{"label":"https://itunes.apple.com/us/reviews/id326193131"},"name":{"label":"Jane"},"label":""},` +
		`"im:version":{"label":"21.0"},"im:rating":{"label":"3"},"id":{"label":"7"},"title":{"label":"Nice"},` +
		`"content":{"label":"Works well.","attributes":{"type":"text"}},` +
		`"link":{"attributes":{"rel":"related","href":"https://itunes.apple.com/us/review?id=389801252&type=Purple%20Software"}},` +
		`"im:voteSum":{"label":"0"},"im:contentType":{"attributes":{"term":"Application","label":"Application"}},"im:voteCount":{"label":"0"}}`

	assert.Contains(t, string(body), ","+want+"\n        ],")
}

func TestRenderDocumentShape(t *testing.T) {
	reviews := []domain_models.Review{
		{ID: 2, Rating: 5, Title: "Second", Body: "b", Author: "x"},
		{ID: 1, Rating: 1, Title: "First", Body: "a", Author: "y"},
	}

	body, err := Render(reviews)
	require.NoError(t, err)
	doc := decodeFeed(t, body)

	require.Len(t, doc.Feed.Entry, 3)
	assert.Equal(t, "Instagram", entryLabel(t, doc.Feed.Entry[0], "im:name"))
	assert.Equal(t, "2", entryLabel(t, doc.Feed.Entry[1], "id"))
	assert.Equal(t, "5", entryLabel(t, doc.Feed.Entry[1], "im:rating"))
	assert.Equal(t, "1", entryLabel(t, doc.Feed.Entry[2], "id"))
	assert.Equal(t, "First", entryLabel(t, doc.Feed.Entry[2], "title"))
	assert.Equal(t, "iTunes Store", doc.Feed.Author["name"].Label)
	assert.Equal(t, "iTunes Store: Customer Reviews", doc.Feed.Title.Label)
	assert.Equal(t, "2017-10-31T11:17:05-07:00", doc.Feed.Updated.Label)
	assert.Len(t, doc.Feed.Link, 6)
}

func TestRenderEmptyFeedIsValidJSON(t *testing.T) {
	body, err := Render(nil)
	require.NoError(t, err)

	doc := decodeFeed(t, body)
	assert.Len(t, doc.Feed.Entry, 1)
}

func TestRenderEscapesStrings(t *testing.T) {
	tricky := `He said "great" \ then left` + "\n"
	body, err := Render([]domain_models.Review{{ID: 1, Rating: 4, Title: tricky, Body: tricky, Author: `"Q"`}})
	require.NoError(t, err)

	doc := decodeFeed(t, body)
	require.Len(t, doc.Feed.Entry, 2)
	assert.Equal(t, tricky, entryLabel(t, doc.Feed.Entry[1], "title"))

	var author struct {
		Name labelDoc `json:"name"`
	}
	require.NoError(t, json.Unmarshal(doc.Feed.Entry[1]["author"], &author))
	assert.Equal(t, `"Q"`, author.Name.Label)
}

func TestRenderKeepsHTMLCharacters(t *testing.T) {
	body, err := Render([]domain_models.Review{{ID: 1, Rating: 4, Title: "<b>&</b>"}})
	require.NoError(t, err)

	assert.Contains(t, string(body), `"title":{"label":"<b>&</b>"}`)
	assert.NotContains(t, string(body), `\u0026`)
}

func TestRenderIsIdempotent(t *testing.T) {
	state := NewState()
	m := NewMutator(NewRandom(3), nil)
	for i := 0; i < 10; i++ {
		m.Apply(state)
	}

	first, err := Render(state.Reviews())
	require.NoError(t, err)
	second, err := Render(state.Reviews())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestRenderEveryRequestParses(t *testing.T) {
	state := NewState()
	m := NewMutator(NewRandom(123), nil)

	for i := 0; i < 50; i++ {
		m.Apply(state)
		body, err := Render(state.Reviews())
		require.NoError(t, err)

		doc := decodeFeed(t, body)
		require.Len(t, doc.Feed.Entry, state.Len()+1)
		for _, e := range doc.Feed.Entry[1:] {
			rating := entryLabel(t, e, "im:rating")
			require.True(t, strings.Contains("12345", rating) && len(rating) == 1, "bad rating %q", rating)
		}
	}
}
