package deptbrain

// Faculty is one member of the department's teaching staff. Records are
// loaded once at startup and never mutated afterwards.
type Faculty struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Subjects     []string `json:"subjects"`
	Semesters    []int    `json:"semesters"`
	Cabin        string   `json:"cabin"`
	Availability string   `json:"availability"`
}

// Validate returns an error if the record is missing required fields.
func (f *Faculty) Validate() error {
	if f.ID == "" {
		return Errorf(EINVALID, "faculty id required")
	}
	if f.Name == "" {
		return Errorf(EINVALID, "faculty name required")
	}
	return nil
}

// Note is a department-level fact not tied to a single faculty member, such
// as who heads the department or when the library is open. A note answers a
// question when every one of its keyword tokens appears among the question's
// tokens.
type Note struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
	Text     string   `json:"text"`
}

// Validate returns an error if the note is missing required fields.
func (n *Note) Validate() error {
	if n.ID == "" {
		return Errorf(EINVALID, "note id required")
	}
	if len(n.Keywords) == 0 {
		return Errorf(EINVALID, "note keywords required")
	}
	if n.Text == "" {
		return Errorf(EINVALID, "note text required")
	}
	return nil
}

// baseDomainTerms seed the vocabulary with department language that is
// recognized even when the loaded dataset does not mention it.
var baseDomainTerms = []string{
	"department", "faculty", "professor", "teacher", "subject", "subjects",
	"cabin", "office", "room", "semester", "availability", "available",
	"timing", "timings", "class",
}

// Catalog holds the loaded faculty records and notes together with the
// domain vocabulary derived from them. A catalog is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	faculty []*Faculty
	notes   []*Note
	vocab   map[string]struct{}
}

// NewCatalog builds a catalog from loaded records. The vocabulary is the
// union of the base domain terms, every token of every faculty name and
// subject, and every note keyword token.
func NewCatalog(faculty []*Faculty, notes []*Note) *Catalog {
	vocab := make(map[string]struct{})
	add := func(text string) {
		for _, tok := range Tokenize(text) {
			vocab[tok] = struct{}{}
		}
	}

	for _, term := range baseDomainTerms {
		vocab[term] = struct{}{}
	}
	for _, f := range faculty {
		add(f.Name)
		for _, subject := range f.Subjects {
			add(subject)
		}
	}
	for _, n := range notes {
		for _, keyword := range n.Keywords {
			add(keyword)
		}
	}

	return &Catalog{faculty: faculty, notes: notes, vocab: vocab}
}

// Faculty returns the loaded faculty records in file order.
func (c *Catalog) Faculty() []*Faculty {
	return c.faculty
}

// Notes returns the loaded department notes in file order.
func (c *Catalog) Notes() []*Note {
	return c.notes
}

// InVocabulary reports whether token belongs to the domain vocabulary.
func (c *Catalog) InVocabulary(token string) bool {
	_, ok := c.vocab[token]
	return ok
}
