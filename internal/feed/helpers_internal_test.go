package feed

// scriptedRandom replays fixed answers; once a queue runs dry it returns
// the lowest allowed value.
type scriptedRandom struct {
	ints    []int
	choices []int
}

func (r *scriptedRandom) IntRange(min, max int) int {
	if len(r.ints) == 0 {
		return min
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRandom) Weighted(weights []int) int {
	if len(r.choices) == 0 {
		return 0
	}
	v := r.choices[0]
	r.choices = r.choices[1:]
	return v
}

type fixedText struct {
	sentence  string
	paragraph string
}

func (t fixedText) Sentence() string  { return t.sentence }
func (t fixedText) Paragraph() string { return t.paragraph }

func newScriptedMutator(rnd *scriptedRandom) *Mutator {
	m := NewMutator(rnd, nil)
	m.text = fixedText{sentence: "New sentence.", paragraph: "New paragraph."}
	return m
}
