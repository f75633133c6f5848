package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/wbrown/janus-objects/graph/store"
	"github.com/wbrown/janus-objects/object"
)

// aliasFlags collects repeated -alias name=iri flags
type aliasFlags map[string]string

func (a aliasFlags) String() string {
	parts := make([]string, 0, len(a))
	for name, iri := range a {
		parts = append(parts, name+"="+iri)
	}
	return strings.Join(parts, ",")
}

func (a aliasFlags) Set(s string) error {
	name, iri, ok := strings.Cut(s, "=")
	if !ok || name == "" || iri == "" {
		return fmt.Errorf("expected name=iri, got %q", s)
	}
	a[name] = iri
	return nil
}

func main() {
	var dbPath string
	var schemaPath string
	var configPath string
	var lang string
	var interactive bool
	var help bool
	aliases := aliasFlags{}

	flag.StringVar(&dbPath, "db", "", "data store path")
	flag.StringVar(&schemaPath, "schema", "", "separate schema store path (default: the data store)")
	flag.StringVar(&configPath, "config", "", "YAML file with prefixes, aliases and language")
	flag.StringVar(&lang, "lang", "", "language tag for new string values")
	flag.BoolVar(&interactive, "i", false, "interactive mode")
	flag.BoolVar(&help, "h", false, "show help")
	flag.Var(aliases, "alias", "attribute alias name=iri (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [args...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Read and write graph nodes as objects with attributes.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprint(os.Stderr, commandHelp)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -db people.db bind foaf http://xmlns.com/foaf/0.1/\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -db people.db add ex_me foaf_name Alice\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -db people.db show ex_me\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -db people.db -config prefixes.yaml -i\n", os.Args[0])
	}
	flag.Parse()

	if help {
		flag.Usage()
		os.Exit(0)
	}

	// Default to graph.db if no path specified
	if dbPath == "" {
		dbPath = "graph.db"
	}

	data, err := store.NewBadgerStore(dbPath, store.DefaultBadgerOptions())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer data.Close()

	cfg := &Config{}
	if configPath != "" {
		file, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config: %v", err)
		}
		cfg, err = LoadConfiguration(file)
		file.Close()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if err := cfg.bindPrefixes(data.Namespaces()); err != nil {
		log.Fatalf("Failed to bind prefixes: %v", err)
	}

	// Flags override the config file
	for name, iri := range aliases {
		if cfg.Aliases == nil {
			cfg.Aliases = map[string]string{}
		}
		cfg.Aliases[name] = iri
	}
	if lang == "" {
		lang = cfg.Language
	}

	opts := []object.Option{object.WithAliases(cfg.Aliases), object.WithLanguage(lang)}
	if schemaPath != "" {
		schema, err := store.NewBadgerStore(schemaPath, store.DefaultBadgerOptions())
		if err != nil {
			log.Fatalf("Failed to open schema store: %v", err)
		}
		defer schema.Close()
		opts = append(opts, object.WithSchema(schema))
	}

	s := &session{f: object.NewFactory(data, opts...), out: os.Stdout}

	if interactive {
		runInteractive(s)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := s.run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func runInteractive(s *session) {
	fmt.Println(color.GreenString("=== graphobj interactive mode ==="))
	fmt.Print(commandHelp)
	fmt.Println("  exit                         - Exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		args := splitArgs(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return
		}
		if err := s.run(args); err != nil {
			fmt.Println(color.RedString("Error: %v", err))
		}
	}
}

// splitArgs splits a line on whitespace, keeping double-quoted runs together
func splitArgs(line string) []string {
	var args []string
	var cur strings.Builder
	inQuote, started := false, false

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case (r == ' ' || r == '\t') && !inQuote:
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if started {
		args = append(args, cur.String())
	}
	return args
}
