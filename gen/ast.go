package gen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ava12/scaffold/grammar"
)

// AST returns ast.h, ast.c, and one traversal file per non-terminal.
func (gen *Generator) AST(g *grammar.Grammar) []File {
	res := []File{
		{ASTDir + "/ast.h", gen.astHeader(g)},
		{ASTDir + "/ast.c", gen.astSource(g)},
	}
	for _, r := range g.Rules {
		res = append(res, File{ASTDir + "/" + r.Name + ".c", gen.astTraverse(r)})
	}
	return res
}

func (gen *Generator) astHeader(g *grammar.Grammar) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, "ast.h", "AST traverse public interface.")
	buffer.WriteString("\n#ifndef _AST_H_\n#define _AST_H_\n\n")

	buffer.WriteString("typedef enum {\n")
	for _, r := range g.Rules {
		fmt.Fprintf(&buffer, "    AST_%s,\n", strings.ToUpper(r.Name))
	}
	buffer.WriteString("} ast_node_type_t;\n\n")

	buffer.WriteString("typedef struct _ast_node_ {\n    ast_node_type_t type;\n} ast_node_t;\n\n")

	for _, r := range g.Rules {
		writeRuleComment(&buffer, r)
		fmt.Fprintf(&buffer, "typedef struct _ast_%s_t_ {\n    ast_node_t node;\n\n} ast_%s_t;\n\n", r.Name, r.Name)
	}

	for _, r := range g.Rules {
		fmt.Fprintf(&buffer, "void traverse_%s(ast_%s_t* node);\n", r.Name, r.Name)
	}

	start := g.StartSymbol()
	buffer.WriteString("\nast_node_t* create_ast_node(ast_node_type_t type);\n")
	fmt.Fprintf(&buffer, "void traverse_ast(ast_%s_t* node);\n\n", start)
	buffer.WriteString("#endif /* _AST_H_ */\n")
	return buffer.Bytes()
}

func (gen *Generator) astSource(g *grammar.Grammar) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, "ast.c", "AST implementation.")
	buffer.WriteString("#include <stddef.h>\n\n#include \"ast.h\"\n\n")

	buffer.WriteString("static size_t node_size(ast_node_type_t type) {\n\n    return\n")
	for _, r := range g.Rules {
		fmt.Fprintf(&buffer, "        (type == AST_%s)? sizeof(ast_%s_t) :\n", strings.ToUpper(r.Name), r.Name)
	}
	buffer.WriteString("        (size_t)-1; // error if we reach here\n}\n\n")

	buffer.WriteString("ast_node_t* create_ast_node(ast_node_type_t type) {\n\n" +
		"    ast_node_t* node = _ALLOC(node_size(type));\n" +
		"    node->type = type;\n" +
		"    return node;\n}\n\n")

	start := g.StartSymbol()
	fmt.Fprintf(&buffer, "void traverse_ast(ast_%s_t* node) {\n\n    traverse_%s(node);\n}\n", start, start)
	return buffer.Bytes()
}

func (gen *Generator) astTraverse(r grammar.Rule) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, r.Name+".c", "Traverse AST for node "+r.Name+".")
	buffer.WriteString("#include \"ast.h\"\n#include \"trace.h\"\n\n")
	writeRuleComment(&buffer, r)
	fmt.Fprintf(&buffer, "void traverse_%s(ast_%s_t* node) {\n\n    ENTER;\n    RETURN();\n}\n", r.Name, r.Name)
	return buffer.Bytes()
}
