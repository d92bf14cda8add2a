// Command cslfmt renders a batch of bibliographic items through a
// compiled CSL style. Subcommands are dispatched directly off
// os.Args rather than through the flag package: "cslfmt bib" and
// "cslfmt cite", each parsing its own --flag pairs out of os.Args.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/gocsl/internal/itemstore"
	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/params"
	"github.com/funvibe/gocsl/internal/style"
	"github.com/funvibe/gocsl/internal/value"
	"github.com/funvibe/gocsl/pkg/csl"
)

func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// bold wraps s in an ANSI bold escape only when stdout is a terminal
// and NO_COLOR isn't set, the same gate funxy's builtins_term.go uses.
func bold(s string) string {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor || !isTTY() {
		return s
	}
	return "\x1b[1m" + s + "\x1b[0m"
}

type flags struct {
	stylePath string
	itemsPath string
	locale    string
	force     bool
	delimiter string
}

func parseFlags(args []string) (flags, error) {
	f := flags{delimiter: "; "}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--style":
			i++
			if i >= len(args) {
				return f, fmt.Errorf("--style requires a path")
			}
			f.stylePath = args[i]
		case "--items":
			i++
			if i >= len(args) {
				return f, fmt.Errorf("--items requires a path")
			}
			f.itemsPath = args[i]
		case "--locale":
			i++
			if i >= len(args) {
				return f, fmt.Errorf("--locale requires a code")
			}
			f.locale = args[i]
		case "--force-locale":
			f.force = true
		case "--delimiter":
			i++
			if i >= len(args) {
				return f, fmt.Errorf("--delimiter requires a value")
			}
			f.delimiter = args[i]
		default:
			return f, fmt.Errorf("unrecognized flag: %s", args[i])
		}
	}
	if f.stylePath == "" || f.itemsPath == "" {
		return f, fmt.Errorf("both --style and --items are required")
	}
	return f, nil
}

func loadOrchestrator(f flags) (*csl.Orchestrator, []value.Item, error) {
	registry, err := locale.DefaultRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("locale registry: %w", err)
	}
	loc, err := registry.Resolve("en-US")
	if err != nil {
		return nil, nil, fmt.Errorf("resolve bootstrap locale: %w", err)
	}
	st, err := style.LoadFixture(f.stylePath, loc)
	if err != nil {
		return nil, nil, fmt.Errorf("load style: %w", err)
	}
	records, err := itemstore.LoadFixture(f.itemsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load items: %w", err)
	}
	items := make([]value.Item, len(records))
	for i, r := range records {
		items[i] = r
	}
	return csl.New(st, registry), items, nil
}

func runBib(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	o, items, err := loadOrchestrator(f)
	if err != nil {
		return err
	}
	entries, err := o.GenerateBibliography(items, params.Default(), f.locale, f.force, nil)
	if err != nil {
		return fmt.Errorf("generate bibliography: %w", err)
	}
	fmt.Println(bold("Bibliography"))
	for _, e := range entries {
		fmt.Println(e.PlainText())
	}
	return nil
}

func runCite(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	o, items, err := loadOrchestrator(f)
	if err != nil {
		return err
	}
	cite, err := o.GenerateCitation(items, params.Default(), f.locale, f.force, f.delimiter, nil)
	if err != nil {
		return fmt.Errorf("generate citation: %w", err)
	}
	if cite == nil {
		return nil
	}
	fmt.Println(cite.Run.PlainText())
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  cslfmt bib  --style <style.yaml> --items <items.yaml> [--locale xx-XX] [--force-locale]")
	fmt.Fprintln(os.Stderr, "  cslfmt cite --style <style.yaml> --items <items.yaml> [--locale xx-XX] [--force-locale] [--delimiter \"; \"]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "bib":
		err = runBib(os.Args[2:])
	case "cite":
		err = runCite(os.Args[2:])
	case "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Printf("cslfmt: %v", err)
		os.Exit(1)
	}
}
