package deptbrain

// abusiveTerms are checked before any other routing. Matching is exact on
// tokens, so "stupidity" does not trip the filter.
var abusiveTerms = map[string]struct{}{
	"idiot":   {},
	"stupid":  {},
	"useless": {},
	"dumb":    {},
	"hate":    {},
	"fool":    {},
	"moron":   {},
}

// intentTerms admit question shapes that the dataset vocabulary alone would
// miss, such as abbreviated subject names ("who teaches ML?").
var intentTerms = map[string]struct{}{
	"who":          {},
	"where":        {},
	"when":         {},
	"teach":        {},
	"teaches":      {},
	"teacher":      {},
	"faculty":      {},
	"subject":      {},
	"subjects":     {},
	"course":       {},
	"cabin":        {},
	"office":       {},
	"room":         {},
	"semester":     {},
	"availability": {},
	"timing":       {},
	"timetable":    {},
	"lab":          {},
	"class":        {},
	"department":   {},
}

// Classifier decides whether a question may enter the answer pipeline.
type Classifier struct {
	catalog *Catalog
	lookup  Lookup
}

// NewClassifier creates a Classifier over the catalog, using lookup for the
// fuzzy name and subject signals.
func NewClassifier(catalog *Catalog, lookup Lookup) *Classifier {
	return &Classifier{catalog: catalog, lookup: lookup}
}

// IsAbusive reports whether any token of the question is an abusive term.
func (c *Classifier) IsAbusive(question string) bool {
	for tok := range TokenSet(question) {
		if _, ok := abusiveTerms[tok]; ok {
			return true
		}
	}
	return false
}

// IsDomainQuestion reports whether the question shows any in-domain signal:
// vocabulary overlap, an intent keyword, a fuzzy faculty-name match, or a
// recognized subject. A single signal is enough; the check is deliberately
// permissive so the later stages see borderline questions.
func (c *Classifier) IsDomainQuestion(question string) bool {
	for tok := range TokenSet(question) {
		if c.catalog.InVocabulary(tok) {
			return true
		}
		if _, ok := intentTerms[tok]; ok {
			return true
		}
	}
	if _, ok := c.lookup.Match(question); ok {
		return true
	}
	if _, ok := c.lookup.Subject(question); ok {
		return true
	}
	return false
}
