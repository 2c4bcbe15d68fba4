package feed

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoremSentenceShape(t *testing.T) {
	l := NewLorem(NewRandom(5))

	for i := 0; i < 200; i++ {
		s := l.Sentence()
		require.NotEmpty(t, s)

		words := strings.Fields(s)
		assert.GreaterOrEqual(t, len(words), minSentenceWords)
		assert.LessOrEqual(t, len(words), maxSentenceWords)
		assert.True(t, unicode.IsUpper(rune(s[0])), "sentence %q is not capitalised", s)
		assert.Contains(t, ".?!", s[len(s)-1:])
	}
}

func TestLoremParagraphIsSentences(t *testing.T) {
	rnd := &scriptedRandom{ints: []int{3}}
	l := NewLorem(rnd)

	p := l.Paragraph()

	// every remaining draw returns the minimum: three four-word sentences
	// made of the first vocabulary word
	assert.Equal(t, "Adipisci adipisci adipisci adipisci. Adipisci adipisci adipisci adipisci. Adipisci adipisci adipisci adipisci.", p)
}

func TestLoremUsesOnlyVocabulary(t *testing.T) {
	l := NewLorem(NewRandom(9))
	vocab := map[string]bool{}
	for _, w := range loremWords {
		vocab[w] = true
	}

	for _, w := range strings.Fields(l.Paragraph()) {
		w = strings.ToLower(strings.TrimRight(w, ".?!"))
		assert.True(t, vocab[w], "unexpected word %q", w)
	}
}
