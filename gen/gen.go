// Package gen emits AST, parser, and scanner stubs and listing files for grammar.Grammar.
package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ava12/scaffold/grammar"
)

// Output directories, relative to output root.
const (
	ASTDir     = "ast"
	ParserDir  = "parser"
	ScannerDir = "scanner"
)

// Dirs lists all directories generated files are placed in.
var Dirs = []string{ASTDir, ParserDir, ScannerDir}

// File is a generated file.
type File struct {
	// Name is slash-separated path relative to output root.
	Name    string
	Content []byte
}

// Generator emits source stubs.
type Generator struct {
	// Stamp is written to every source file header, usually it is generation time.
	Stamp string
}

// New creates new Generator.
func New(stamp string) *Generator {
	return &Generator{Stamp: stamp}
}

// All returns AST, parser, and scanner files.
func (gen *Generator) All(g *grammar.Grammar) []File {
	res := gen.AST(g)
	res = append(res, gen.Parser(g)...)
	return append(res, gen.Scanner(g)...)
}

// Write writes files to dir, creating subdirectories as needed.
func Write(dir string, files []File) error {
	for _, f := range files {
		name := filepath.Join(dir, filepath.FromSlash(f.Name))
		e := os.MkdirAll(filepath.Dir(name), 0o777)
		if e == nil {
			e = os.WriteFile(name, f.Content, 0o666)
		}
		if e != nil {
			return e
		}
	}
	return nil
}

func (gen *Generator) header(buffer *bytes.Buffer, name, brief string) {
	fmt.Fprintf(buffer, "/**\n *\n * @file %s\n *\n * @brief %s\n", name, brief)
	fmt.Fprintf(buffer, " * This file was generated on %s.\n *\n */\n", gen.Stamp)
}

func commentText(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}

func writeRuleComment(buffer *bytes.Buffer, r grammar.Rule) {
	buffer.WriteString("/**\n")
	fmt.Fprintf(buffer, " * %s\n", r.Name)
	for i, p := range r.Productions {
		marker := "|"
		if i == 0 {
			marker = ":"
		}
		fmt.Fprintf(buffer, " *     %s %s\n", marker, commentText(p))
	}
	if r.Terminated {
		buffer.WriteString(" *     ;\n")
	}
	buffer.WriteString(" */\n")
}

// cQuote returns s as C string literal.
func cQuote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(c)
		case '\n':
			sb.WriteString("\\n")
		case '\t':
			sb.WriteString("\\t")
		default:
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// writeIndented writes lines shifting them right by 4 spaces per open brace level.
func writeIndented(buffer *bytes.Buffer, lines []string, level int) {
	for _, line := range lines {
		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")
		if strings.HasPrefix(line, "}") {
			level--
			closes--
		}
		if level < 0 {
			level = 0
		}
		if line != "" {
			buffer.WriteString(strings.Repeat("    ", level))
		}
		buffer.WriteString(line)
		buffer.WriteByte('\n')
		level += opens - closes
	}
}
