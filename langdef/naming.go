package langdef

import (
	"regexp"
	"strings"
)

type atomKind int

const (
	// literalAtom is a quoted literal.
	literalAtom atomKind = iota
	// symbolAtom is a bare ALL-CAPS token reference or a scan rule name.
	symbolAtom
)

const tokenPrefix = "TOK"

// punctNames maps punctuation characters to token name fragments.
// Other characters contribute nothing to token name.
var punctNames = map[rune]string{
	'!':  "_BANG",
	'@':  "_AT",
	'#':  "_HASH",
	'$':  "_DOLLAR",
	'%':  "_PERCENT",
	'^':  "_CARAT",
	'&':  "_AMPERSAND",
	'*':  "_STAR",
	'(':  "_OPAREN",
	')':  "_CPAREN",
	'-':  "_MINUS",
	'=':  "_EQUAL",
	'+':  "_PLUS",
	'[':  "_OSBRACE",
	']':  "_CSBRACE",
	'{':  "_OCBRACE",
	'}':  "_CCBRACE",
	'\\': "_BSLASH",
	':':  "_COLON",
	';':  "_SEMICOLON",
	'\'': "_SQUOTE",
	'"':  "_DQUOTE",
	',':  "_COMMA",
	'<':  "_OPBRACE",
	'.':  "_DOT",
	'>':  "_CPBRACE",
	'/':  "_SLASH",
	'?':  "_QUESTION",
	'~':  "_TILDE",
}

var (
	identRe  = regexp.MustCompile(`^[a-zA-Z_]+$`)
	symbolRe = regexp.MustCompile(`^[A-Z_]+$`)
)

func isIdentifier(text string) bool {
	return identRe.MatchString(text)
}

func isSymbol(text string) bool {
	return text != "_" && symbolRe.MatchString(text)
}

// tokenName returns canonical token name and display string for an atom.
// lossy is set if some characters of a punctuation literal have no name fragment,
// such literals may share token name with other literals.
func tokenName(raw string, kind atomKind) (name, display string, lossy bool) {
	if kind == symbolAtom {
		return tokenPrefix + "_" + raw, strings.ReplaceAll(raw, "_", " "), false
	}

	if isIdentifier(raw) {
		upper := strings.ToUpper(raw)
		return tokenPrefix + "_" + upper, strings.ReplaceAll(upper, "_", " "), false
	}

	var sb strings.Builder
	sb.WriteString(tokenPrefix)
	for _, c := range raw {
		fragment, has := punctNames[c]
		if has {
			sb.WriteString(fragment)
		} else {
			lossy = true
		}
	}
	return sb.String(), strings.ReplaceAll(raw, "_", " "), lossy
}
