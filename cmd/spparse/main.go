// Command spparse drives the parser front end over a single source
// file: it is the parser's equivalent of the teacher's cc.go, with the
// code-generation flags swapped for the diagnostics/inspection flags a
// front-end-only tool actually needs.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/slices"
	"gopkg.in/urfave/cli.v1"

	"github.com/NiDE-gg/sourcepawn/ast"
	"github.com/NiDE-gg/sourcepawn/atom"
	"github.com/NiDE-gg/sourcepawn/config"
	"github.com/NiDE-gg/sourcepawn/diag"
	"github.com/NiDE-gg/sourcepawn/lexer"
	"github.com/NiDE-gg/sourcepawn/parser"
	"github.com/NiDE-gg/sourcepawn/tag"
	"github.com/NiDE-gg/sourcepawn/token"
)

// collector is the Visitor that gathers every top-level declaration so
// -dump and -stats have something to report on after Parse returns.
type collector struct {
	decls []ast.Decl
	kinds map[string]int
}

func newCollector() *collector { return &collector{kinds: make(map[string]int)} }

func (c *collector) Process(d ast.Decl) {
	c.decls = append(c.decls, d)
	c.kinds[declKindName(d)]++
}

func declKindName(d ast.Decl) string {
	switch d.(type) {
	case *ast.VarDecl:
		return "variable"
	case *ast.ConstDecl:
		return "const"
	case *ast.EnumDecl:
		return "enum"
	case *ast.EnumStructDecl:
		return "enum struct"
	case *ast.PstructDecl:
		return "struct"
	case *ast.TypedefDecl:
		return "typedef"
	case *ast.TypesetDecl:
		return "typeset"
	case *ast.UsingDecl:
		return "using"
	case *ast.MethodmapDecl:
		return "methodmap"
	case *ast.FuncStubDecl:
		return "function stub"
	case *ast.FuncDecl:
		return "function"
	case *ast.StaticAssertStmt:
		return "static_assert"
	default:
		return "error"
	}
}

func tokenizeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for tokenizing: %w", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	lx := lexer.Lex(path, f, int(info.Size()))
	for {
		tok := lx.Next()
		fmt.Println(tok.String())
		if tok.Kind == token.EOF {
			return nil
		}
	}
}

func parseFile(path string, cfg *config.Config) (*collector, *diag.Sink, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s for parsing: %w", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	lx := lexer.Lex(path, f, int(info.Size()))
	sink := diag.NewSink()
	tags := tag.New()
	atoms := atom.New()
	p := parser.New(lx, cfg, sink, tags, atoms)
	c := newCollector()
	p.Parse(c)
	return c, sink, nil
}

func printStats(c *collector) {
	kinds := make([]string, 0, len(c.kinds))
	for kind := range c.kinds {
		kinds = append(kinds, kind)
	}
	// map iteration order is random; sort so -stats output is
	// reproducible across runs.
	slices.SortFunc(kinds, func(a, b string) bool { return a < b })

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Declaration kind", "Count"})
	for _, kind := range kinds {
		table.Append([]string{kind, fmt.Sprintf("%d", c.kinds[kind])})
	}
	table.Render()
}

func main() {
	app := cli.NewApp()
	app.Name = "spparse"
	app.Usage = "parse a SourcePawn-dialect source file"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "P", Usage: "print tokens instead of parsing"},
		cli.BoolFlag{Name: "dump", Usage: "dump the parsed AST"},
		cli.BoolFlag{Name: "stats", Usage: "print a table of declaration counts"},
		cli.StringFlag{Name: "config", Usage: "path to a TOML config file overriding the defaults"},
	}
	app.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.NewExitError("expected a single source file argument", 1)
		}
		path := c.Args().Get(0)

		if c.Bool("P") {
			if err := tokenizeFile(path); err != nil {
				return cli.NewExitError(err.Error(), 1)
			}
			return nil
		}

		cfg := config.Default()
		if cfgPath := c.String("config"); cfgPath != "" {
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return cli.NewExitError(err.Error(), 1)
			}
			cfg = loaded
		}

		collected, sink, err := parseFile(path, cfg)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		sink.Print(os.Stderr)

		if c.Bool("dump") {
			spew.Dump(collected.decls)
		}
		if c.Bool("stats") {
			printStats(collected)
		}
		if sink.HasErrors() {
			return cli.NewExitError("", 1)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
