/*
Package langdef converts textual grammar description to grammar.Grammar structure.

Description is line-oriented, leading and trailing spaces are insignificant.
Blank lines and lines starting with # are skipped between records.
Every other top-level line starts a record of one of three types:

Scan rule starts with a name line matching /^[A-Z_]+$/ followed by pattern lines,
each starting with : or |. A line starting with { opens action block, the block
lasts until all braces are balanced. Scan rule ends with ; line, blank line,
or a line of any other kind:
*/
//  NUMBER
//      : [0-9]+
//      | 0x[0-9a-fA-F]+
//  {
//      return parse_number(yytext);
//  }
//  ;
/*
Scan rule with no action block emits matched text as a token of its own type.
Scan rule named FOO defines TOK_FOO token as soon as its name line is read.

Grammar rule starts with a name line matching /^[a-z_]+$/ followed by production lines,
each starting with : or |. Grammar rule ends with ; line, blank line,
or a line of any other kind:
*/
//  expression
//      : expression '+' term
//      | term
//      ;
/*
Every literal quoted with ' or " in a production defines a terminal.
Literal consisting of latin letters and underscores is also a keyword, its token
name is TOK_ followed by upper-cased literal ('if' is TOK_IF).
Token name of any other literal is TOK followed by names of its characters
('==' is TOK_EQUAL_EQUAL, '(' is TOK_OPAREN), characters with no name
are skipped, e.g. '+1' is TOK_PLUS.
Distinct literals having the same token name are reported as an error.
Unquoted word matching /^[A-Z_]+$/ (except lone _) is a reference to token
TOK_ followed by that word.

First grammar rule defines start symbol. There must be at least one grammar rule.
Non-terminal and scan rule names must be unique.

Scanner state block starts with <name> marker line and lasts until blank line,
its lines are copied as is:
*/
//  <COMMENT>
//  "*/"  { BEGIN(INITIAL); }
//  .     { }
/*
The same state may have several blocks.

Every token ever mentioned gets its type, types start at 256 and follow
the order of first appearance. Types of TOK_END_OF_INPUT, TOK_END_OF_FILE,
and TOK_ERROR tokens follow grammar tokens, these names cannot be used in description.

Any other top-level line is skipped with a warning.
*/
package langdef
