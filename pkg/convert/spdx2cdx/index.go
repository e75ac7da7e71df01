package spdx2cdx

import (
	"encoding/json"

	"github.com/aquasecurity/sbomconv/pkg/jsonstream"
	"github.com/aquasecurity/sbomconv/pkg/model"
	"github.com/aquasecurity/sbomconv/pkg/progress"
	"github.com/aquasecurity/sbomconv/pkg/spdxshape"
)

// Index is Pass 1's product: every relationship read in Pass 1, whatever its
// type, keyed by its "from" spdxId, in the order encountered. It is
// the O(R) structure spec.md §4.5 accepts holding in memory for the whole
// conversion, since relationship counts are bounded by BOM size rather than
// by package-manager-scale graphs.
type Index struct {
	byFrom map[string][]model.Relationship
}

// newIndex returns an empty Index ready for Add.
func newIndex() *Index {
	return &Index{byFrom: make(map[string][]model.Relationship)}
}

// Add records one relationship.
func (idx *Index) Add(r model.Relationship) {
	idx.byFrom[r.From] = append(idx.byFrom[r.From], r)
}

// From returns the relationships whose "from" is id, in encounter order, or
// nil if id never appeared as a "from".
func (idx *Index) From(id string) []model.Relationship {
	return idx.byFrom[id]
}

// Froms returns the set of distinct "from" ids, used by Pass 2 to iterate
// dependency groups. Order is unspecified, matching Go map iteration; CDX
// dependency ordering is not spec'd either.
func (idx *Index) Froms() []string {
	out := make([]string, 0, len(idx.byFrom))
	for k := range idx.byFrom {
		out = append(out, k)
	}
	return out
}

// buildIndex runs Pass 1: stream the input once, indexing every entry of the
// simple "relationships" array, or every @graph entry typed Relationship or
// LifecycleScopedRelationship, without filtering on relationshipType. The
// consumers filter: Pass 2 keeps DEPENDS_ON/dependsOn/contains targets and
// simple-mode Pass 3 keeps AFFECTS. JSON-LD VEX relationships are excluded
// here; Pass 3 collects those with its own @graph scan, per spec.md §4.5.
func buildIndex(r *jsonstream.Reader, shape spdxshape.Shape, prog *progress.Sink) (*Index, error) {
	idx := newIndex()

	ok, err := r.ExpectObject()
	if err != nil {
		return nil, err
	}
	if !ok {
		return idx, nil
	}

	switch shape {
	case spdxshape.ShapeSimple:
		err = r.Keys(func(key string) (bool, error) {
			if key != "relationships" {
				return false, nil
			}
			return true, indexSimpleRelationships(r, idx, prog)
		})
	case spdxshape.ShapeJSONLD:
		err = r.Keys(func(key string) (bool, error) {
			if key != "@graph" {
				return false, nil
			}
			return true, indexGraphRelationships(r, idx, prog)
		})
	}
	if err != nil {
		return nil, err
	}
	return idx, nil
}

func indexSimpleRelationships(r *jsonstream.Reader, idx *Index, prog *progress.Sink) error {
	return r.Array(func(i int) (bool, error) {
		var w model.RelationshipWire
		if err := r.DecodeInto(&w); err != nil {
			return true, err
		}
		idx.Add(w.ToRelationship())
		prog.IncRelationship()
		return true, nil
	})
}

func indexGraphRelationships(r *jsonstream.Reader, idx *Index, prog *progress.Sink) error {
	return r.Array(func(i int) (bool, error) {
		var g graphEntryWire
		if err := r.DecodeInto(&g); err != nil {
			return true, err
		}
		if g.Type != model.TypeRelationship && g.Type != model.TypeLifecycleScopedRelationship {
			return true, nil
		}
		var targets []string
		if len(g.To) > 0 {
			if err := json.Unmarshal(g.To, &targets); err != nil {
				return true, err
			}
		}
		for _, to := range targets {
			idx.Add(model.Relationship{From: g.From, RelationshipType: g.RelationshipType, To: to})
			prog.IncRelationship()
		}
		return true, nil
	})
}
