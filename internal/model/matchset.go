package model

// MatchSet holds the records of a Document whose category matched.
// Records keep their relative order from the source document.
type MatchSet struct {
	// Source is the path of the document the records came from.
	Source string

	// Category is the requested category as given on the command line.
	Category string

	// Document is the source document. Its metadata is reused for JSON output.
	Document *Document

	// Records are the matching records in source order.
	Records []*Record
}

// Len returns the number of matched records.
func (m *MatchSet) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Records)
}

// IsEmpty reports whether no record matched.
func (m *MatchSet) IsEmpty() bool {
	return m.Len() == 0
}

// Scanned returns the number of records examined.
func (m *MatchSet) Scanned() int {
	if m == nil || m.Document == nil {
		return 0
	}
	return m.Document.Scanned()
}

// OutputDocument returns the source document with its collection replaced
// by the matched records. A MatchSet without a source document produces a
// bare document holding only the collection.
func (m *MatchSet) OutputDocument() *Document {
	doc := m.Document
	if doc == nil {
		doc = NewDocument(DefaultRecordsField)
	}
	return doc.WithRecords(m.Records)
}

// HashCoverage counts how many matched records carry each hash algorithm.
func (m *MatchSet) HashCoverage() map[HashAlgorithm]int {
	coverage := make(map[HashAlgorithm]int, len(HashAlgorithms()))
	if m == nil {
		return coverage
	}
	for _, r := range m.Records {
		for _, alg := range HashAlgorithms() {
			if _, ok := r.Hash(alg); ok {
				coverage[alg]++
			}
		}
	}
	return coverage
}
