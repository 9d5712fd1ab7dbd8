package gen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ava12/scaffold/grammar"
)

// Parser states shared by all generated parse functions.
// START is initial, the rest are final: MATCH builds a node, NO_MATCH rewinds
// token queue to entry position, ERROR invokes error recovery.
const (
	StateStart   = 0
	StateMatch   = 1000
	StateNoMatch = 1010
	StateError   = 1020
)

// Parser returns parser.h, parser_prototypes.h, parser.c, and one parse function file per non-terminal.
func (gen *Generator) Parser(g *grammar.Grammar) []File {
	res := []File{
		{ParserDir + "/parser.h", gen.parserHeader(g)},
		{ParserDir + "/parser_prototypes.h", gen.parserPrototypes(g)},
		{ParserDir + "/parser.c", gen.parserSource(g)},
	}
	for _, r := range g.Rules {
		res = append(res, File{ParserDir + "/" + r.Name + ".c", gen.parseFunction(r)})
	}
	return res
}

func (gen *Generator) parserHeader(g *grammar.Grammar) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, "parser.h", "Parse grammar public interface.")
	buffer.WriteString("#ifndef _PARSER_H_\n#define _PARSER_H_\n\n")
	buffer.WriteString("#include \"ast.h\"\n#include \"parser_prototypes.h\"\n\n")

	buffer.WriteString("typedef enum {\n")
	fmt.Fprintf(&buffer, "    STATE_START = %d,\n", StateStart)
	fmt.Fprintf(&buffer, "    STATE_MATCH = %d,\n", StateMatch)
	fmt.Fprintf(&buffer, "    STATE_NO_MATCH = %d,\n", StateNoMatch)
	fmt.Fprintf(&buffer, "    STATE_ERROR = %d,\n", StateError)
	buffer.WriteString("} parser_state_t;\n\n")

	buffer.WriteString("void recover_error(void);\n\n")
	buffer.WriteString("#define STATE \\\n" +
		"    do { \\\n" +
		"        TRACE(\"STATE: %d\", state); \\\n" +
		"    } while(0)\n\n")

	fmt.Fprintf(&buffer, "ast_%s_t* parse(void);\n\n", g.StartSymbol())
	buffer.WriteString("#endif /* _PARSER_H_ */\n")
	return buffer.Bytes()
}

func (gen *Generator) parserPrototypes(g *grammar.Grammar) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, "parser_prototypes.h", "Internal prototypes for parser.")
	buffer.WriteString("#ifndef _PARSER_PROTOTYPES_H_\n#define _PARSER_PROTOTYPES_H_\n\n")
	buffer.WriteString("#include \"ast.h\"\n\n")
	for _, r := range g.Rules {
		fmt.Fprintf(&buffer, "ast_%s_t* parse_%s(void);\n", r.Name, r.Name)
	}
	buffer.WriteString("\n#endif /* _PARSER_PROTOTYPES_H_ */\n")
	return buffer.Bytes()
}

func (gen *Generator) parserSource(g *grammar.Grammar) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, "parser.c", "Parser external interface implementation.")
	buffer.WriteString("#include \"ast.h\"\n#include \"parser_prototypes.h\"\n\n")
	start := g.StartSymbol()
	fmt.Fprintf(&buffer, "ast_%s_t* parse(void) {\n\n", start)
	fmt.Fprintf(&buffer, "    ast_%s_t* %s = parse_%s();\n    return %s;\n}\n", start, start, start, start)
	return buffer.Bytes()
}

func (gen *Generator) parseFunction(r grammar.Rule) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, r.Name+".c", "Parse grammar production "+r.Name+".")
	buffer.WriteString("#include <stdbool.h>\n\n#include \"tokens.h\"\n#include \"trace.h\"\n#include \"parser.h\"\n\n")
	writeRuleComment(&buffer, r)
	fmt.Fprintf(&buffer, "ast_%s_t* parse_%s(void) {\n\n", r.Name, r.Name)
	buffer.WriteString("    ENTER;\n\n")
	fmt.Fprintf(&buffer, "    ast_%s_t* node = NULL;\n", r.Name)
	buffer.WriteString("    int state = STATE_START;\n" +
		"    bool finished = false;\n" +
		"    void* post = post_token_queue();\n\n" +
		"    while(!finished) {\n" +
		"        switch(state) {\n" +
		"            case STATE_START:\n" +
		"                // initial state\n" +
		"                STATE;\n" +
		"                break;\n\n" +
		"            case STATE_MATCH:\n" +
		"                // production recognized\n" +
		"                STATE;\n")
	fmt.Fprintf(&buffer, "                node = (ast_%s_t*)create_ast_node(AST_%s);\n", r.Name, strings.ToUpper(r.Name))
	buffer.WriteString("                finished = true;\n" +
		"                break;\n\n" +
		"            case STATE_NO_MATCH:\n" +
		"                // not a match, not an error\n" +
		"                STATE;\n" +
		"                reset_token_queue(post);\n" +
		"                finished = true;\n" +
		"                break;\n\n" +
		"            case STATE_ERROR:\n" +
		"                // error found\n" +
		"                STATE;\n" +
		"                recover_error();\n" +
		"                finished = true;\n" +
		"                break;\n\n" +
		"            default:\n" +
		"                FATAL(\"unknown state: %d\", state);\n" +
		"        }\n" +
		"    }\n\n" +
		"    RETURN(node);\n" +
		"}\n")
	return buffer.Bytes()
}
