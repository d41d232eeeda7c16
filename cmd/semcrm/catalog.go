package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/semcrm/export"
	"github.com/c360studio/semcrm/ontology"
	"github.com/c360studio/semcrm/vocabulary/namespaces"
	"github.com/spf13/cobra"
)

// classView is the JSON shape of a catalog class.
type classView struct {
	Name      string         `json:"name"`
	IRI       string         `json:"iri"`
	Parents   []string       `json:"parents,omitempty"`
	Ancestors []string       `json:"ancestors,omitempty"`
	Relations []relationView `json:"relations,omitempty"`
	Literals  []relationView `json:"literals,omitempty"`
}

type relationView struct {
	Name     string `json:"name"`
	Forward  string `json:"forward,omitempty"`
	Inverse  string `json:"inverse,omitempty"`
	Range    string `json:"range,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

func newClassView(cls *ontology.Class, detail bool) classView {
	v := classView{
		Name:    cls.Name,
		IRI:     string(cls.IRI),
		Parents: cls.Parents,
	}
	if !detail {
		return v
	}
	v.Ancestors = cls.Ancestors
	for _, r := range cls.Relations() {
		v.Relations = append(v.Relations, relationView{
			Name:    r.Name,
			Forward: compact(string(r.Property.Forward)),
			Inverse: compact(string(r.Property.Inverse)),
			Range:   r.Range,
		})
	}
	for _, l := range cls.Literals() {
		v.Literals = append(v.Literals, relationView{
			Name:     l.Name,
			Forward:  compact(string(l.Predicate)),
			Datatype: compact(string(l.Datatype)),
		})
	}
	return v
}

func compact(iri string) string {
	if iri == "" {
		return ""
	}
	if prefix, local, ok := namespaces.Compact(iri, nil); ok {
		return prefix + ":" + local
	}
	return iri
}

func classesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classes [class]",
		Short: "List catalog classes, or show one class in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := ontology.Default()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				cls, ok := cat.Class(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", ontology.ErrUnknownClass, args[0])
				}
				view := newClassView(cls, true)
				if asJSON {
					return writeJSON(out, view)
				}
				printClass(out, view)
				return nil
			}

			views := make([]classView, 0)
			for _, cls := range cat.Classes() {
				views = append(views, newClassView(cls, false))
			}
			if asJSON {
				return writeJSON(out, views)
			}
			for _, v := range views {
				fmt.Fprintf(out, "%-36s %s\n", v.Name, compact(v.IRI))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func printClass(w io.Writer, v classView) {
	fmt.Fprintf(w, "%s <%s>\n", v.Name, v.IRI)
	if len(v.Parents) > 0 {
		fmt.Fprintf(w, "  parents:   %s\n", strings.Join(v.Parents, ", "))
	}
	if len(v.Ancestors) > 0 {
		fmt.Fprintf(w, "  ancestors: %s\n", strings.Join(v.Ancestors, ", "))
	}
	if len(v.Relations) > 0 {
		fmt.Fprintln(w, "  relations:")
		for _, r := range v.Relations {
			fmt.Fprintf(w, "    %-36s %s / %s\n", r.Name, orDash(r.Forward), orDash(r.Inverse))
		}
	}
	if len(v.Literals) > 0 {
		fmt.Fprintln(w, "  literals:")
		for _, l := range v.Literals {
			fmt.Fprintf(w, "    %-36s %s %s\n", l.Name, l.Forward, l.Datatype)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func prefixesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefixes",
		Short: "List namespace prefixes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range namespaces.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", p.Prefix, p.IRI)
			}
		},
	}
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range export.Formats() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %-7s %-24s %s\n", f.Name, f.Extension, f.MIMEType, f.Description)
			}
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
