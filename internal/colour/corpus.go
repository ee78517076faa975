package colour

// Corpus holds the unique colours observed in a document, in the order
// they were first seen, along with per-colour occurrence counts. The
// ordered list and the count map always describe the same set of
// colours.
type Corpus struct {
	colours []string
	counts  map[string]int
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{
		counts: make(map[string]int),
	}
}

// Add normalizes a raw colour value and records it. Values that do not
// normalize to a canonical hex colour are silently dropped. Returns the
// canonical form, or an empty string if the value was dropped.
func (c *Corpus) Add(value string) string {
	hex := Normalize(value)
	if hex == "" {
		return ""
	}
	if _, seen := c.counts[hex]; !seen {
		c.colours = append(c.colours, hex)
	}
	c.counts[hex]++
	return hex
}

// Colours returns the unique colours in first-seen order. The returned
// slice is owned by the corpus and must not be mutated.
func (c *Corpus) Colours() []string {
	return c.colours
}

// Count returns how many times a canonical colour was observed.
func (c *Corpus) Count(hex string) int {
	return c.counts[hex]
}

// Len returns the number of unique colours in the corpus.
func (c *Corpus) Len() int {
	return len(c.colours)
}
