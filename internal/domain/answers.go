package domain

import "strings"

// TransformationTriple holds the full-program deep-dive answers: where the
// client starts, where they end up, and how the expert's method gets them there.
type TransformationTriple struct {
	PointA                 string
	PointB                 string
	MethodToTransformation string
}

// Complete reports whether all three parts are non-empty.
func (t TransformationTriple) Complete() bool {
	return strings.TrimSpace(t.PointA) != "" &&
		strings.TrimSpace(t.PointB) != "" &&
		strings.TrimSpace(t.MethodToTransformation) != ""
}

// AnswerValue is the value recorded for a single question. Enum and free-text
// questions use Text; the transformation deep-dive uses Triple.
type AnswerValue struct {
	Text   string
	Triple *TransformationTriple
}

// AnswerStore is an ordered mapping of question key to user-supplied value.
// Insertion order reflects question order. Re-answering a key overwrites the
// value in place and never appends. Only the questionnaire engine mutates it.
type AnswerStore struct {
	keys   []FieldKey
	values map[FieldKey]AnswerValue
}

// NewAnswerStore creates an empty answer store.
func NewAnswerStore() *AnswerStore {
	return &AnswerStore{values: make(map[FieldKey]AnswerValue)}
}

// Set records a value for key, overwriting any previous value without
// changing the key's original position.
func (s *AnswerStore) Set(key FieldKey, v AnswerValue) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// Get returns the value for key and whether it is present.
func (s *AnswerStore) Get(key FieldKey) (AnswerValue, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key has been answered.
func (s *AnswerStore) Has(key FieldKey) bool {
	_, ok := s.values[key]
	return ok
}

// Text returns the text value for key, or "" when absent.
func (s *AnswerStore) Text(key FieldKey) string {
	return s.values[key].Text
}

// Triple returns the transformation triple for key, or nil when absent.
func (s *AnswerStore) Triple(key FieldKey) *TransformationTriple {
	return s.values[key].Triple
}

// Keys returns the answered keys in insertion order.
func (s *AnswerStore) Keys() []FieldKey {
	out := make([]FieldKey, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of answered keys.
func (s *AnswerStore) Len() int {
	return len(s.keys)
}

// Clone returns a deep copy of the store.
func (s *AnswerStore) Clone() *AnswerStore {
	c := NewAnswerStore()
	for _, k := range s.keys {
		v := s.values[k]
		if v.Triple != nil {
			t := *v.Triple
			v.Triple = &t
		}
		c.Set(k, v)
	}
	return c
}
