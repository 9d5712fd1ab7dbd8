/*
scaffold is a console utility generating AST, parser, and scanner stubs from grammar description.
Usage is

	scaffold [-o <dir>] [-j] <file>

-o <dir> defines output directory, default is current directory;

-j flag additionally writes grammar model as grammar.json;

<file> defines grammar definition file parsable by langdef.Parse().

ast, parser, and scanner subdirectories are created in output directory,
listing files (non-terminals.txt, terminals.txt, keywords.txt, tokens.txt, srules.txt)
are written to output directory itself.
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ava12/scaffold/gen"
	"github.com/ava12/scaffold/grammar"
	"github.com/ava12/scaffold/langdef"
)

const (
	exitOk      = 0
	exitUsage   = 1
	exitFailure = 3
)

const (
	jsonFileName = "grammar.json"
	stampFormat  = "Mon Jan _2 15:04:05 2006"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now()))
}

func run(args []string, stdout, stderr io.Writer, now time.Time) int {
	var (
		outDir       string
		generateJson bool
	)

	flags := flag.NewFlagSet("scaffold", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage is  scaffold [-o <dir>] [-j] <file>")
		flags.PrintDefaults()
		fmt.Fprintln(flags.Output(), "  <file>")
		fmt.Fprintln(flags.Output(), "\tgrammar definition file name")
	}
	flags.StringVar(&outDir, "o", ".", "output directory")
	flags.BoolVar(&generateJson, "j", false, "also write grammar model as "+jsonFileName)

	if flags.Parse(args) != nil {
		return exitUsage
	}
	inFileName := flags.Arg(0)
	if inFileName == "" {
		flags.Usage()
		return exitUsage
	}

	var g *grammar.Grammar
	src, e := os.ReadFile(inFileName)
	if e == nil {
		g, e = langdef.ParseBytes(inFileName, src)
	}
	if g != nil {
		for _, w := range g.Warnings {
			fmt.Fprintln(stderr, "warning:", w.Error())
		}
	}

	if e == nil {
		e = makeDirs(outDir)
	}
	if e == nil {
		files := gen.New(now.Format(stampFormat)).All(g)
		files = append(files, gen.ListFiles(g)...)
		if generateJson {
			var f gen.File
			f, e = makeJson(g)
			files = append(files, f)
		}
		if e == nil {
			e = gen.Write(outDir, files)
		}
	}

	if e != nil {
		fmt.Fprintln(stderr, e.Error())
		return exitFailure
	}

	printCounts(stdout, g)
	return exitOk
}

func makeDirs(outDir string) error {
	for _, dir := range gen.Dirs {
		e := os.MkdirAll(filepath.Join(outDir, dir), 0o777)
		if e != nil {
			return e
		}
	}
	return nil
}

func makeJson(g *grammar.Grammar) (gen.File, error) {
	content, e := json.MarshalIndent(g, "", "  ")
	if e != nil {
		return gen.File{}, e
	}
	return gen.File{Name: jsonFileName, Content: append(content, '\n')}, nil
}

func printCounts(w io.Writer, g *grammar.Grammar) {
	fmt.Fprintf(w, "non-terminals: %d\n", len(g.Rules))
	fmt.Fprintf(w, "terminals: %d\n", len(g.Terminals))
	fmt.Fprintf(w, "keywords: %d\n", len(g.Keywords))
	fmt.Fprintf(w, "tokens: %d\n", len(g.Tokens))
	fmt.Fprintf(w, "scan rules: %d\n", len(g.ScanRules))
	fmt.Fprintf(w, "scanner states: %d\n", len(g.StateNames))
}
