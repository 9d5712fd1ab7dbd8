package gen

import (
	"bytes"
	"strings"

	"github.com/ava12/scaffold/grammar"
)

// Listing file names.
const (
	NonTermsList  = "non-terminals.txt"
	TerminalsList = "terminals.txt"
	KeywordsList  = "keywords.txt"
	TokensList    = "tokens.txt"
	ScanRulesList = "srules.txt"
)

// List is a listing file content before formatting.
type List struct {
	Name    string
	Entries []string
}

// Lists returns registry listings in registry order, one entry per line.
// Reserved tokens are not listed.
func Lists(g *grammar.Grammar) []List {
	tokens := make([]string, len(g.Tokens))
	for i, t := range g.Tokens {
		tokens[i] = t.Name
	}
	terminals := make([]string, len(g.Terminals))
	for i, t := range g.Terminals {
		terminals[i] = t.Text
	}
	scanRules := make([]string, len(g.ScanRules))
	for i, sr := range g.ScanRules {
		scanRules[i] = strings.Join(sr.Patterns, "|")
	}

	return []List{
		{NonTermsList, g.Nonterms()},
		{TerminalsList, terminals},
		{KeywordsList, g.Keywords},
		{TokensList, tokens},
		{ScanRulesList, scanRules},
	}
}

// File formats the list.
func (l List) File() File {
	var buffer bytes.Buffer
	for _, entry := range l.Entries {
		buffer.WriteString(entry)
		buffer.WriteByte('\n')
	}
	return File{l.Name, buffer.Bytes()}
}

// ListFiles returns formatted listings.
func ListFiles(g *grammar.Grammar) []File {
	lists := Lists(g)
	res := make([]File, len(lists))
	for i, l := range lists {
		res[i] = l.File()
	}
	return res
}
