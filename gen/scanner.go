package gen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ava12/scaffold/grammar"
)

// Scanner returns tokens.h, tokens.c, and scanner.l.
func (gen *Generator) Scanner(g *grammar.Grammar) []File {
	return []File{
		{ScannerDir + "/tokens.h", gen.tokensHeader(g)},
		{ScannerDir + "/tokens.c", gen.tokensSource(g)},
		{ScannerDir + "/scanner.l", gen.scannerRules(g)},
	}
}

const tokenQueueDecls = `
typedef struct _token_t_ {
    token_type_t type;
    string_buf_t* raw;
    string_buf_t* fname;
    int line_no;
    int col_no;
} token_t;

void init_token_queue(const char* fname);
void* post_token_queue(void);
void reset_token_queue(void* post);
void consume_token_queue(void);
void add_token_queue(token_t* tok);

token_t* create_token(const char* str, token_type_t type);
void destroy_token(token_t* tok);
token_t* get_token(void);
token_t* advance_token(void);
const char* token_type_to_str(token_type_t type);

`

func (gen *Generator) tokensHeader(g *grammar.Grammar) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, "tokens.h", "Token definitions public interface.")
	buffer.WriteString("#ifndef _TOKEN_DEFS_H_\n#define _TOKEN_DEFS_H_\n\n")
	buffer.WriteString("#include <stdint.h>\n#include \"string_buf.h\"\n\n")

	buffer.WriteString("typedef enum {\n")
	for _, t := range g.Tokens {
		fmt.Fprintf(&buffer, "    %s = %d,\n", t.Name, t.Type)
	}
	buffer.WriteString("\n")
	for _, t := range g.ReservedTokens() {
		fmt.Fprintf(&buffer, "    %s = %d,\n", t.Name, t.Type)
	}
	buffer.WriteString("} token_type_t;\n")

	buffer.WriteString(tokenQueueDecls)
	buffer.WriteString("#endif /* _TOKEN_DEFS_H_ */\n")
	return buffer.Bytes()
}

const tokenQueueImpl = `
#include <stdio.h>
#include <strings.h>

#include "tokens.h"
#include "scanner.h"
#include "queue.h"
#include "fileio.h"
#include "alloc.h"

queue_t* token_queue = NULL;

void init_token_queue(const char* fname) {

    if(token_queue == NULL)
        token_queue = _ALLOC_TYPE(queue_t);

    open_file(fname);
    yylex();
}

void* post_token_queue(void) {

    return (void*)token_queue->crnt;
}

void reset_token_queue(void* post) {

    token_queue->crnt = (queue_element_t*)post;
}

void consume_token_queue(void) {

    queue_element_t* next;
    for(queue_element_t* elem = token_queue->head; elem != token_queue->crnt; elem = next) {
        next = elem->next;
        destroy_token(elem->data);
        _FREE(elem);
    }
    token_queue->head = token_queue->crnt;
}

void add_token_queue(token_t* tok) {

    add_queue(token_queue, (void*)tok);
}

token_t* create_token(const char* str, token_type_t type) {

    token_t* tok = _ALLOC_TYPE(token_t);
    tok->type = type;
    tok->raw = create_string_buf(str);
    tok->line_no = get_line_no();
    tok->col_no = get_col_no();
    tok->fname = create_string_buf(get_file_name());

    return tok;
}

void destroy_token(token_t* tok) {

    if(tok != NULL) {
        if(tok->raw != NULL)
            destroy_string_buf(tok->raw);
        if(tok->fname != NULL)
            destroy_string_buf(tok->fname);

        _FREE(tok);
    }
}

token_t* get_token(void) {

    if(token_queue != NULL)
        return peek_queue(token_queue);
    else
        return NULL;
}

token_t* advance_token(void) {

    token_t* tok = advance_queue(token_queue);
    if(tok == NULL) {
        tok = get_token();
        if(tok->type != TOK_END_OF_INPUT) {
            if(yylex() == 0)
                add_token_queue(create_token("end of input", TOK_END_OF_INPUT));

            token_queue->crnt = token_queue->tail;
            tok = get_token();
        }
    }

    return tok;
}

`

func (gen *Generator) tokensSource(g *grammar.Grammar) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, "tokens.c", "Token queue implementation.")
	buffer.WriteString(tokenQueueImpl)

	buffer.WriteString("const char* token_type_to_str(token_type_t type) {\n\n    return\n")
	for _, t := range g.AllTokens() {
		fmt.Fprintf(&buffer, "        (type == %s)? %s :\n", t.Name, cQuote(t.Display))
	}
	fmt.Fprintf(&buffer, "        %s;\n}\n", cQuote(grammar.UnknownTokenDisplay))
	return buffer.Bytes()
}

const scannerPrologue = `
%{
#include <stdio.h>
#include <string.h>
#include <errno.h>

#include "errors.h"
#include "tokens.h"
#include "alloc.h"

int yycolumn = 1;

typedef struct _file_info_t_ {
    const char* fname;
    FILE* fp;
    size_t line_no;
    size_t col_no;
    YY_BUFFER_STATE buffer;
    struct _file_info_t_* next;
} file_info_t;

static file_info_t* file_stack = NULL;
static file_info_t* end_file = NULL;

#define YY_USER_ACTION \
  file_stack->col_no = yycolumn; \
  file_stack->line_no = yylineno; \
  if (yylineno == prev_yylineno) \
    yycolumn += yyleng; \
  else { \
    for (yycolumn = 1; yytext[yyleng - yycolumn] != '\n'; ++yycolumn) {} \
    prev_yylineno = yylineno; \
  }

%}

`

const scannerOptions = `
%option yylineno
%option noinput
%option nounput
%option noyywrap
%option header-file="scanner.h"
%option outfile="scanner.c"

%%

   int prev_yylineno = yylineno;

`

const scannerEpilogue = `
<<EOF>> {

    if(file_stack == NULL) {
        yyterminate();
        return 0;
    }

    file_info_t* fs = file_stack;
    yy_delete_buffer(fs->buffer);
    file_stack = file_stack->next;

    fclose(fs->fp);

    if(file_stack != NULL) {
        yy_switch_to_buffer(file_stack->buffer);
        _FREE(fs->fname);
        _FREE(fs);
    }
    else {
        end_file = fs;
        yyterminate();
    }
}

%%

void open_file(const char* fname) {

    yyin = fopen(fname, "r");
    if(yyin == NULL)
        FATAL("cannot open input file: \"%s\": %s\n", fname, strerror(errno));

    file_info_t* fs = _ALLOC_TYPE(file_info_t);
    fs->fname = fname;
    fs->next = file_stack;
    fs->line_no = 1;
    fs->col_no = 1;

    fs->fp = yyin;
    fs->buffer = yy_create_buffer(yyin, YY_BUF_SIZE);
    yy_switch_to_buffer(fs->buffer);

    file_stack = fs;
}

int get_line_no(void) {

    if(file_stack != NULL)
        return file_stack->line_no;
    else if(end_file != NULL)
        return end_file->line_no;
    else
        return -1; // no file has ever been open
}

int get_col_no(void) {

    if(file_stack != NULL)
        return file_stack->col_no;
    else if(end_file != NULL)
        return end_file->col_no;
    else
        return -1;
}

const char* get_file_name(void) {

    if(file_stack != NULL)
        return file_stack->fname;
    else if(end_file != NULL)
        return end_file->fname;
    else
        return NULL;
}
`

func writeDefaultAction(buffer *bytes.Buffer, token string) {
	fmt.Fprintf(buffer, "{\n    add_token_queue(create_token(yytext, %s));\n    return %s;\n}\n\n", token, token)
}

func (gen *Generator) scannerRules(g *grammar.Grammar) []byte {
	var buffer bytes.Buffer
	gen.header(&buffer, "scanner.l", "Scanner template.")
	buffer.WriteString(scannerPrologue)

	if len(g.StateNames) > 0 {
		fmt.Fprintf(&buffer, "%%x %s\n", strings.Join(g.StateNames, " "))
	}
	buffer.WriteString(scannerOptions)

	for _, t := range g.Terminals {
		buffer.WriteString(cQuote(t.Text) + " ")
		writeDefaultAction(&buffer, t.Token)
	}

	for _, st := range g.States {
		lines := make([]string, len(st.Lines))
		for i, line := range st.Lines {
			lines[i] = strings.TrimSpace(line)
		}
		buffer.WriteString(lines[0] + "\n")
		writeIndented(&buffer, lines[1:], 1)
		buffer.WriteString("\n")
	}

	for _, sr := range g.ScanRules {
		buffer.WriteString(strings.Join(sr.Patterns, "|") + " ")
		if sr.HasAction() {
			writeIndented(&buffer, sr.Action, 0)
			buffer.WriteString("\n")
		} else {
			writeDefaultAction(&buffer, sr.Token)
		}
	}

	buffer.WriteString(scannerEpilogue)
	return buffer.Bytes()
}
