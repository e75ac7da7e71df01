package spdx2cdx

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/aquasecurity/sbomconv/pkg/jsonstream"
	"github.com/aquasecurity/sbomconv/pkg/model"
	"github.com/aquasecurity/sbomconv/pkg/model/adapter"
	"github.com/aquasecurity/sbomconv/pkg/progress"
	"github.com/aquasecurity/sbomconv/pkg/sbomerr"
	"github.com/aquasecurity/sbomconv/pkg/spdxshape"
)

// pass2 streams components from the input's elements/@graph, writing each as
// a CDX component, then uses idx to emit one dependencies[] entry per "from"
// id with at least one DEPENDS_ON/dependsOn/contains target.
func pass2(r *jsonstream.Reader, shape spdxshape.Shape, bw *bufio.Writer, idx *Index, packagesOnly bool, prog *progress.Sink) error {
	if _, err := bw.WriteString("  \"components\": [\n"); err != nil {
		return sbomerr.New(sbomerr.Emit, "spdx2cdx.pass2", err)
	}

	ok, err := r.ExpectObject()
	if err != nil {
		return err
	}
	aw := jsonstream.NewArrayWriter(bw)
	if ok {
		switch shape {
		case spdxshape.ShapeSimple:
			err = r.Keys(func(key string) (bool, error) {
				if key != "elements" {
					return false, nil
				}
				return true, streamSimpleComponents(r, aw, packagesOnly, prog)
			})
		case spdxshape.ShapeJSONLD:
			err = r.Keys(func(key string) (bool, error) {
				if key != "@graph" {
					return false, nil
				}
				return true, streamGraphComponents(r, aw, packagesOnly, prog)
			})
		}
		if err != nil {
			return err
		}
	}

	if _, err := bw.WriteString("\n  ],\n"); err != nil {
		return sbomerr.New(sbomerr.Emit, "spdx2cdx.pass2", err)
	}

	return writeDependencies(bw, idx)
}

func streamSimpleComponents(r *jsonstream.Reader, aw *jsonstream.ArrayWriter, packagesOnly bool, prog *progress.Sink) error {
	return r.Array(func(i int) (bool, error) {
		var w model.ElementWire
		if err := r.DecodeInto(&w); err != nil {
			return true, err
		}
		e := w.ToElement()
		if e.Type != model.TypeSpdxPackage && e.Type != model.TypeSpdxFile {
			return true, nil
		}
		if packagesOnly && e.Type == model.TypeSpdxFile {
			return true, nil
		}
		if err := writeComponent(aw, e); err != nil {
			return true, err
		}
		prog.IncElement()
		return true, nil
	})
}

func streamGraphComponents(r *jsonstream.Reader, aw *jsonstream.ArrayWriter, packagesOnly bool, prog *progress.Sink) error {
	return r.Array(func(i int) (bool, error) {
		var g graphEntryWire
		if err := r.DecodeInto(&g); err != nil {
			return true, err
		}
		if !isComponentType(g.Type) {
			return true, nil
		}
		if packagesOnly && isFileType(g.Type) {
			return true, nil
		}
		if err := writeComponent(aw, g.toElement()); err != nil {
			return true, err
		}
		prog.IncElement()
		return true, nil
	})
}

func writeComponent(aw *jsonstream.ArrayWriter, e model.Element) error {
	c := adapter.ElementToComponent(e)
	err := aw.WriteElement(func(w io.Writer) error {
		if _, err := io.WriteString(w, "    "); err != nil {
			return err
		}
		return json.NewEncoder(w).Encode(c)
	})
	if err != nil {
		return sbomerr.New(sbomerr.Emit, "spdx2cdx.writeComponent", err)
	}
	return nil
}

// writeDependencies emits one dependencies[] entry per "from" id in idx that
// has at least one DEPENDS_ON/dependsOn/contains target. "contains" is
// folded into dependsOn per spec.md §4.1's simple-relationship table.
func writeDependencies(bw *bufio.Writer, idx *Index) error {
	if _, err := bw.WriteString("  \"dependencies\": [\n"); err != nil {
		return sbomerr.New(sbomerr.Emit, "spdx2cdx.writeDependencies", err)
	}

	aw := jsonstream.NewArrayWriter(bw)
	for _, from := range idx.Froms() {
		var dependsOn []string
		for _, rel := range idx.From(from) {
			switch rel.RelationshipType {
			case model.RelDependsOnSimple, model.RelDependsOnJSONLD, model.RelContains:
				dependsOn = append(dependsOn, adapter.SpdxIDToBomRef(rel.To))
			}
		}
		if len(dependsOn) == 0 {
			continue
		}
		d := model.Dependency{Ref: adapter.SpdxIDToBomRef(from), DependsOn: dependsOn}
		err := aw.WriteElement(func(w io.Writer) error {
			if _, err := io.WriteString(w, "    "); err != nil {
				return err
			}
			return json.NewEncoder(w).Encode(d)
		})
		if err != nil {
			return sbomerr.New(sbomerr.Emit, "spdx2cdx.writeDependencies", err)
		}
	}

	if _, err := bw.WriteString("\n  ]"); err != nil {
		return sbomerr.New(sbomerr.Emit, "spdx2cdx.writeDependencies", err)
	}
	return nil
}
