// Package textindex builds a TF-IDF vector space over course descriptions and
// scores free-text queries against it with cosine similarity.
package textindex

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultMaxFeatures caps the vocabulary size when Options.MaxFeatures is zero.
const DefaultMaxFeatures = 5000

var (
	// ErrModelNotReady is returned when scoring against an index that was never built.
	ErrModelNotReady = errors.New("text index not ready")
	// ErrEmptyVocabulary is returned when the corpus yields no usable terms.
	ErrEmptyVocabulary = errors.New("empty vocabulary: descriptions contain only stop words or are empty")
	// ErrPositionOutOfRange is returned when a scored position is outside the indexed corpus.
	ErrPositionOutOfRange = errors.New("position out of range")
)

// Options configures index construction.
type Options struct {
	MaxFeatures int
}

// Scored is a similarity score for one catalog position.
type Scored struct {
	Position int
	Score    float64
}

type entry struct {
	col    int
	weight float64
}

// vector is a sparse L2-normalized feature vector sorted by column.
type vector []entry

// Index is a frozen vocabulary, idf weights and one vector per document.
// It is read-only after Build and safe for concurrent use.
type Index struct {
	vocab   map[string]int
	idf     []float64
	vectors []vector
}

// Build fits the vocabulary and idf weights on descriptions and vectorizes
// each one. Vector i corresponds to descriptions[i].
func Build(descriptions []string, opts Options) (*Index, error) {
	if opts.MaxFeatures <= 0 {
		opts.MaxFeatures = DefaultMaxFeatures
	}

	docs := make([][]string, len(descriptions))
	counts := make(map[string]int)
	docFreq := make(map[string]int)
	for i, d := range descriptions {
		docs[i] = features(d)
		seen := make(map[string]bool)
		for _, f := range docs[i] {
			counts[f]++
			if !seen[f] {
				seen[f] = true
				docFreq[f]++
			}
		}
	}
	if len(counts) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	if len(terms) > opts.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if counts[terms[i]] != counts[terms[j]] {
				return counts[terms[i]] > counts[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:opts.MaxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(descriptions))
	idx := &Index{
		vocab:   make(map[string]int, len(terms)),
		idf:     make([]float64, len(terms)),
		vectors: make([]vector, len(docs)),
	}
	for col, term := range terms {
		idx.vocab[term] = col
		idx.idf[col] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	for i, doc := range docs {
		idx.vectors[i] = idx.vectorize(doc)
	}
	return idx, nil
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.vectors)
}

// VocabularySize returns the number of features retained by Build.
func (idx *Index) VocabularySize() int {
	if idx == nil {
		return 0
	}
	return len(idx.vocab)
}

// Score projects query into the index space and returns its cosine
// similarity with each document in positions, in the order given.
// Query terms unseen during Build contribute nothing.
func (idx *Index) Score(query string, positions []int) ([]Scored, error) {
	if idx == nil || idx.vocab == nil {
		return nil, ErrModelNotReady
	}

	q := idx.vectorize(features(query))
	out := make([]Scored, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(idx.vectors) {
			return nil, fmt.Errorf("%w: %d (index has %d documents)", ErrPositionOutOfRange, pos, len(idx.vectors))
		}
		out = append(out, Scored{Position: pos, Score: dot(q, idx.vectors[pos])})
	}
	return out, nil
}

// vectorize builds the L2-normalized tf-idf vector for a feature list.
// Entries are ordered by column so that sums are reproducible.
func (idx *Index) vectorize(feats []string) vector {
	tf := make(map[int]float64)
	for _, f := range feats {
		if col, ok := idx.vocab[f]; ok {
			tf[col]++
		}
	}
	v := make(vector, 0, len(tf))
	for col, count := range tf {
		v = append(v, entry{col: col, weight: count * idx.idf[col]})
	}
	sort.Slice(v, func(i, j int) bool { return v[i].col < v[j].col })

	var norm float64
	for _, e := range v {
		norm += e.weight * e.weight
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i].weight /= norm
	}
	return v
}

// dot is the cosine similarity of two normalized vectors.
func dot(a, b vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].col == b[j].col:
			sum += a[i].weight * b[j].weight
			i++
			j++
		case a[i].col < b[j].col:
			i++
		default:
			j++
		}
	}
	return sum
}
