package deptbrain

// Lookup answers questions directly from the faculty catalog, without any
// model call. Implementations must be deterministic: the same catalog and
// question always produce the same result.
type Lookup interface {
	// Match returns the catalog record whose name best matches the
	// question, when the best score clears the name threshold.
	Match(question string) (*Faculty, bool)

	// Subject returns the first catalog subject recognized in the question.
	Subject(question string) (string, bool)

	// Answer returns a deterministic answer when the question fits one of
	// the structured shapes, or false to fall through to retrieval.
	Answer(question string) (*Answer, bool)
}
