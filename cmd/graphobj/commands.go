package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/wbrown/janus-objects/graph"
	"github.com/wbrown/janus-objects/object"
)

const commandHelp = `  bind <prefix> <uri>          - Bind a namespace prefix
  prefixes                     - List bound prefixes
  new                          - Create a fresh blank node
  get <subject> <attr>         - Read an attribute
  set <subject> <attr> <value> - Replace a single value, or add to a multi-valued attribute
  add <subject> <attr> <value> - Add a value to the attribute's value set
  remove <subject> <attr> <value> - Remove one value
  del <subject> <attr>         - Delete every value of an attribute
  show <subject>               - Show all attributes as a table
`

type session struct {
	f   *object.Factory
	out io.Writer
}

func (s *session) run(args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "bind":
		if len(rest) != 2 {
			return fmt.Errorf("usage: bind <prefix> <uri>")
		}
		if err := s.f.Data().Namespaces().Bind(rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Fprintln(s.out, color.GreenString("bound %s: <%s>", rest[0], rest[1]))

	case "prefixes":
		ns := s.f.Data().Namespaces()
		for _, p := range ns.All() {
			uri, _ := ns.Lookup(p)
			fmt.Fprintf(s.out, "%s\t<%s>\n", color.CyanString(p), uri)
		}

	case "new":
		e := s.f.New()
		fmt.Fprintln(s.out, e.ID())

	case "get":
		if len(rest) != 2 {
			return fmt.Errorf("usage: get <subject> <attr>")
		}
		e, err := s.entity(rest[0])
		if err != nil {
			return err
		}
		v, err := e.Get(rest[1])
		if err != nil {
			return err
		}
		if vals, ok := v.(*object.Values); ok {
			items, err := vals.Slice()
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Fprintln(s.out, display(item))
			}
			return nil
		}
		fmt.Fprintln(s.out, display(v))

	case "set":
		if len(rest) != 3 {
			return fmt.Errorf("usage: set <subject> <attr> <value>")
		}
		e, err := s.entity(rest[0])
		if err != nil {
			return err
		}
		single, err := e.IsSingleValued(rest[1])
		if err != nil {
			return err
		}
		v, err := s.parseValue(rest[2])
		if err != nil {
			return err
		}
		a := object.Scalar(v)
		if !single {
			a = object.Collection(v)
		}
		if err := e.Set(rest[1], a); err != nil {
			return err
		}
		fmt.Fprintln(s.out, color.GreenString("ok"))

	case "add", "remove":
		if len(rest) != 3 {
			return fmt.Errorf("usage: %s <subject> <attr> <value>", cmd)
		}
		e, err := s.entity(rest[0])
		if err != nil {
			return err
		}
		vals, err := e.Values(rest[1])
		if err != nil {
			return err
		}
		v, err := s.parseValue(rest[2])
		if err != nil {
			return err
		}
		if cmd == "add" {
			err = vals.Add(v)
		} else {
			err = vals.Remove(v)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, color.GreenString("ok"))

	case "del":
		if len(rest) != 2 {
			return fmt.Errorf("usage: del <subject> <attr>")
		}
		e, err := s.entity(rest[0])
		if err != nil {
			return err
		}
		if err := e.Delete(rest[1]); err != nil {
			return err
		}
		fmt.Fprintln(s.out, color.GreenString("ok"))

	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("usage: show <subject>")
		}
		e, err := s.entity(rest[0])
		if err != nil {
			return err
		}
		table, err := object.NewTableFormatter().FormatEntity(e)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, table)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// entity resolves a subject argument: <iri>, _:id or a prefixed name
func (s *session) entity(arg string) (*object.Entity, error) {
	if t, ok := parseTerm(arg); ok {
		return s.f.Entity(object.NameTerm(t))
	}
	return s.f.Named(arg)
}

func parseTerm(arg string) (graph.Term, bool) {
	switch {
	case strings.HasPrefix(arg, "<") && strings.HasSuffix(arg, ">") && len(arg) > 2:
		return graph.IRI(arg[1 : len(arg)-1]), true
	case strings.HasPrefix(arg, "_:") && len(arg) > 2:
		return graph.BlankNode{ID: arg[2:]}, true
	}
	return nil, false
}

// parseValue turns a command argument into a native value. Node terms and
// @name references become nodes, numbers and booleans become their Go
// types, everything else is a string.
func (s *session) parseValue(arg string) (any, error) {
	if t, ok := parseTerm(arg); ok {
		return t, nil
	}
	if strings.HasPrefix(arg, "@") {
		return s.f.Named(arg[1:])
	}

	if arg == "true" || arg == "false" {
		return arg == "true", nil
	}
	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f, nil
	}
	return arg, nil
}

func display(v any) string {
	switch val := v.(type) {
	case *object.Entity:
		return color.CyanString(val.String())
	case string:
		return strconv.Quote(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = display(item)
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprint(val)
	}
}
