// Package fuzzy implements structured lookup over the faculty catalog using
// partial-ratio fuzzy matching.
package fuzzy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fwojciec/deptbrain"
)

// Similarity thresholds on the 0-100 partial-ratio scale. Names tolerate
// more noise than subjects because questions routinely drop titles.
const (
	nameThreshold    = 75
	subjectThreshold = 85
)

// Ensure Lookup implements deptbrain.Lookup.
var _ deptbrain.Lookup = (*Lookup)(nil)

// Lookup answers the common where/what/who question shapes directly from
// the catalog, without any model call.
type Lookup struct {
	catalog *deptbrain.Catalog
}

// NewLookup creates a Lookup over the catalog.
func NewLookup(catalog *deptbrain.Catalog) *Lookup {
	return &Lookup{catalog: catalog}
}

// Match returns the record whose lowercased name scores highest against the
// lowercased question, when that score reaches the name threshold. Ties keep
// the earlier record.
func (l *Lookup) Match(question string) (*deptbrain.Faculty, bool) {
	q := strings.ToLower(question)

	best := 0
	var bestFaculty *deptbrain.Faculty
	for _, f := range l.catalog.Faculty() {
		if score := partialRatio(strings.ToLower(f.Name), q); score > best {
			best = score
			bestFaculty = f
		}
	}
	if best < nameThreshold {
		return nil, false
	}
	return bestFaculty, true
}

// Subject returns the first catalog subject whose token set is contained in
// the question's tokens or vice versa, falling back to a partial-ratio
// comparison for near-miss spellings.
func (l *Lookup) Subject(question string) (string, bool) {
	q := strings.ToLower(question)
	qTokens := deptbrain.TokenSet(question)

	for _, f := range l.catalog.Faculty() {
		for _, subject := range f.Subjects {
			sTokens := deptbrain.TokenSet(subject)
			if len(sTokens) > 0 && (subsetOf(sTokens, qTokens) || subsetOf(qTokens, sTokens)) {
				return subject, true
			}
			if partialRatio(strings.ToLower(subject), q) >= subjectThreshold {
				return subject, true
			}
		}
	}
	return "", false
}

// Answer handles the structured question shapes in order: faculty location,
// faculty subjects, subject teachers (optionally narrowed to a semester),
// then department notes. Anything else falls through to retrieval.
func (l *Lookup) Answer(question string) (*deptbrain.Answer, bool) {
	q := strings.ToLower(question)

	faculty, matched := l.Match(question)

	if matched && containsAny(q, "where", "cabin", "room", "office", "find") {
		text := fmt.Sprintf("%s is in cabin %s. Availability: %s.", faculty.Name, faculty.Cabin, faculty.Availability)
		return structuredAnswer(text, facultySource(faculty)), true
	}

	if matched && containsAny(q, "subject", "teach", "teaches", "course") {
		text := fmt.Sprintf("%s teaches: %s.", faculty.Name, strings.Join(faculty.Subjects, ", "))
		return structuredAnswer(text, facultySource(faculty)), true
	}

	if subject, ok := l.Subject(question); ok && containsAny(q, "who", "teacher", "faculty", "teach") {
		if answer, ok := l.subjectTeachers(question, subject); ok {
			return answer, true
		}
	}

	if note, ok := l.matchNote(question); ok {
		return structuredAnswer(note.Text, noteSource(note)), true
	}

	return nil, false
}

// subjectTeachers names everyone teaching subject. A semester mentioned in
// the question narrows the list when at least one of them covers it;
// otherwise the full list stands.
func (l *Lookup) subjectTeachers(question, subject string) (*deptbrain.Answer, bool) {
	var teachers []*deptbrain.Faculty
	for _, f := range l.catalog.Faculty() {
		if containsString(f.Subjects, subject) {
			teachers = append(teachers, f)
		}
	}
	if len(teachers) == 0 {
		return nil, false
	}

	if semester, ok := semesterIn(question); ok {
		var covering []*deptbrain.Faculty
		for _, f := range teachers {
			if containsInt(f.Semesters, semester) {
				covering = append(covering, f)
			}
		}
		if len(covering) > 0 {
			text := fmt.Sprintf("%s is taught by %s for semester %d.", subject, joinNames(covering), semester)
			return structuredAnswer(text, facultySources(covering)...), true
		}
	}

	text := fmt.Sprintf("%s is taught by %s.", subject, joinNames(teachers))
	return structuredAnswer(text, facultySources(teachers)...), true
}

// matchNote returns the first note whose every keyword token appears among
// the question's tokens.
func (l *Lookup) matchNote(question string) (*deptbrain.Note, bool) {
	qTokens := deptbrain.TokenSet(question)
	for _, n := range l.catalog.Notes() {
		kTokens := deptbrain.TokenSet(strings.Join(n.Keywords, " "))
		if len(kTokens) == 0 {
			continue
		}
		if subsetOf(kTokens, qTokens) {
			return n, true
		}
	}
	return nil, false
}

// partialRatio scores the best-aligned substring similarity of a and b.
// Empty input never matches anything.
func partialRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return fuzzywuzzy.PartialRatio(a, b)
}

func subsetOf(a, b map[string]struct{}) bool {
	for tok := range a {
		if _, ok := b[tok]; !ok {
			return false
		}
	}
	return true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}

// semesterIn finds a "semester <n>" mention in the question.
func semesterIn(question string) (int, bool) {
	tokens := deptbrain.Tokenize(question)
	for i, tok := range tokens {
		if tok != "semester" || i+1 >= len(tokens) {
			continue
		}
		if n, err := strconv.Atoi(tokens[i+1]); err == nil {
			return n, true
		}
	}
	return 0, false
}

func joinNames(faculty []*deptbrain.Faculty) string {
	names := make([]string, len(faculty))
	for i, f := range faculty {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

func structuredAnswer(text string, sources ...deptbrain.Source) *deptbrain.Answer {
	return &deptbrain.Answer{
		Text:    text,
		Route:   deptbrain.RouteStructured,
		Sources: sources,
	}
}

func facultySource(f *deptbrain.Faculty) deptbrain.Source {
	data, _ := json.Marshal(f)
	return deptbrain.Source{
		ID:       f.ID,
		Text:     string(data),
		Metadata: map[string]string{"source": "structured"},
	}
}

func facultySources(faculty []*deptbrain.Faculty) []deptbrain.Source {
	sources := make([]deptbrain.Source, len(faculty))
	for i, f := range faculty {
		sources[i] = facultySource(f)
	}
	return sources
}

func noteSource(n *deptbrain.Note) deptbrain.Source {
	return deptbrain.Source{
		ID:       n.ID,
		Text:     n.Text,
		Metadata: map[string]string{"source": "structured", "type": "note"},
	}
}
