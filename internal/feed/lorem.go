package feed

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var loremWords = []string{
	"adipisci", "aliquam", "amet", "consectetur", "dolor", "dolore",
	"dolorem", "eius", "est", "et", "incidunt", "ipsum", "labore",
	"magnam", "modi", "neque", "non", "numquam", "porro", "quaerat",
	"qui", "quia", "quiquia", "quisquam", "sed", "sit", "tempora",
	"ut", "velit", "voluptatem",
}

var (
	sentenceEnds       = []string{".", "?", "!"}
	sentenceEndWeights = []int{8, 1, 1}
)

const (
	minSentenceWords   = 4
	maxSentenceWords   = 12
	minParagraphLength = 3
	maxParagraphLength = 7
)

// Lorem generates placeholder review text.
type Lorem struct {
	rnd Random
}

func NewLorem(rnd Random) *Lorem {
	return &Lorem{rnd: rnd}
}

func (l *Lorem) Sentence() string {
	n := l.rnd.IntRange(minSentenceWords, maxSentenceWords)
	words := make([]string, n)
	for i := range words {
		words[i] = loremWords[l.rnd.IntRange(0, len(loremWords)-1)]
	}
	words[0] = capitalize(words[0])
	return strings.Join(words, " ") + sentenceEnds[l.rnd.Weighted(sentenceEndWeights)]
}

func (l *Lorem) Paragraph() string {
	n := l.rnd.IntRange(minParagraphLength, maxParagraphLength)
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = l.Sentence()
	}
	return strings.Join(sentences, " ")
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
