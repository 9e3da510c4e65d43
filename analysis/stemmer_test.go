package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	cases := map[string]string{
		// -s forms
		"caresses": "caress",
		"ponies":   "poni",
		"cats":     "cat",
		// -ed / -ing
		"running":    "run",
		"hopping":    "hop",
		"hoping":     "hope",
		"agreed":     "agre",
		"plastered":  "plaster",
		"motoring":   "motor",
		"conflated":  "conflat",
		"troubled":   "troubl",
		"sized":      "size",
		// y -> i
		"happy": "happi",
		"sky":   "sky",
		// step 2
		"relational":    "relat",
		"conditional":   "condit",
		"valenci":       "valenc",
		"digitizer":     "digit",
		"operator":      "oper",
		"sensibiliti":   "sensibl",
		"analogousli":   "analog",
		// step 3
		"triplicate": "triplic",
		"formative":  "form",
		"formalize":  "formal",
		"electrical": "electr",
		"hopeful":    "hope",
		"goodness":   "good",
		// step 4
		"revival":    "reviv",
		"allowance":  "allow",
		"inference":  "infer",
		"airliner":   "airlin",
		"adjustment": "adjust",
		"activate":   "activ",
		"adoption":   "adopt",
		// step 5
		"probate":    "probat",
		"rate":       "rate",
		"controll":   "control",
		"roll":       "roll",
		// misc
		"easily": "easili",
	}

	for word, want := range cases {
		assert.Equal(t, want, Stem(word), "stem(%q)", word)
	}
}

func TestStemShortWords(t *testing.T) {
	// Words under three bytes are returned untouched.
	assert.Equal(t, "a", Stem("a"))
	assert.Equal(t, "be", Stem("be"))
	assert.Equal(t, "GO", Stem("GO"))
}

func TestStemFoldsCase(t *testing.T) {
	assert.Equal(t, Stem("running"), Stem("RUNNING"))
	assert.Equal(t, Stem("Relational"), Stem("relational"))
}

func TestStemIdempotent(t *testing.T) {
	for _, w := range []string{"running", "relational", "conditional", "hoping", "easily", "cats"} {
		once := Stem(w)
		assert.Equal(t, once, Stem(once), "stem(stem(%q))", w)
	}
}

func TestMeasure(t *testing.T) {
	cases := map[string]int{
		"tr":      0,
		"ee":      0,
		"tree":    0,
		"y":       0,
		"by":      0,
		"trouble": 1,
		"oats":    1,
		"trees":   1,
		"ivy":     1,
		"troubles": 2,
		"private":  2,
		"oaten":    2,
	}
	for w, want := range cases {
		assert.Equal(t, want, measure(w), "measure(%q)", w)
	}
}

func TestStemAll(t *testing.T) {
	got := StemAll([]string{"running", "cats", "easily"})
	assert.Equal(t, []string{"run", "cat", "easili"}, got)
}
