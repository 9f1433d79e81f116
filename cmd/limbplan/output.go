package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rigkit/tendon"
	"gopkg.in/yaml.v3"
)

// planDocument is the serialized form of a RigPlan: enum fields flattened to
// strings, offsets as column-major 16-element arrays.
type planDocument struct {
	Entries    []entryDocument  `json:"entries" yaml:"entries"`
	PoleVector *bindingDocument `json:"pole_vector,omitempty" yaml:"pole_vector,omitempty"`
}

type entryDocument struct {
	Kind        string      `json:"kind" yaml:"kind"`
	Name        string      `json:"name" yaml:"name"`
	Parent      string      `json:"parent,omitempty" yaml:"parent,omitempty"`
	Offset      [16]float64 `json:"offset" yaml:"offset,flow"`
	RotateOrder string      `json:"rotate_order,omitempty" yaml:"rotate_order,omitempty"`
	Drives      string      `json:"drives,omitempty" yaml:"drives,omitempty"`
}

type bindingDocument struct {
	StartJoint string `json:"start_joint" yaml:"start_joint"`
	Control    string `json:"control" yaml:"control"`
}

func planToDocument(plan *tendon.RigPlan) planDocument {
	doc := planDocument{}
	for _, entry := range plan.Entries {
		out := entryDocument{
			Kind:   entry.Kind.String(),
			Name:   entry.Name,
			Parent: entry.Parent,
			Offset: [16]float64(entry.Offset),
			Drives: entry.Drives,
		}
		if entry.Kind == tendon.KindDuplicateJoint {
			out.RotateOrder = entry.RotateOrder.String()
		}
		doc.Entries = append(doc.Entries, out)
	}
	if plan.PoleVector != nil {
		doc.PoleVector = &bindingDocument{
			StartJoint: plan.PoleVector.StartJoint,
			Control:    plan.PoleVector.Control,
		}
	}
	return doc
}

func writePlan(w io.Writer, plan *tendon.RigPlan, format string) error {
	doc := planToDocument(plan)

	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
