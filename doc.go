/*
Package jsonkit is a JSON value model, textual parser/emitter, and
encode/decode protocol for statically typed records and tagged unions.

 Grammar

 value   ::= null | bool | number | string | array | object
 object  ::= '{' ( pair (',' pair)* )? '}'
 pair    ::= string ':' value
 array   ::= '[' ( value (',' value)* )? ']'
 string  ::= '"' char* '"'
 char    ::= any Unicode code point except '"' and '\', or an escape
 escape  ::= '\"' | '\\' | '\/' | '\n' | '\r' | '\t' | '\b' | '\f' | '\u' hex hex hex hex
 number  ::= '-'? int frac? exp?
 int     ::= '0' | [1-9] digit*
 frac    ::= '.' digit+
 exp     ::= ('e'|'E') ('+'|'-')? digit+

No trailing commas, no comments, no unquoted keys. Whitespace (space,
tab, line feed, carriage return) separates tokens and is otherwise
insignificant. Numbers decode to float64; a Number is always finite —
Infinity and NaN are rejected on both input and output.

 Packages

 jsonkit            — Value, Diagnostic, Unmarshal, Marshal, MarshalIndent
 jsonkit/codec      — the Encoder/Decoder protocol and its built-in bodies
 jsonkit/derive     — the record/tagged-union code generator

A record or tagged-union type does not implement its encoder/decoder
by hand; jsonkit/derive reads //jsonkit:record and //jsonkit:variant
declarations and writes EncodeValue/DecodeValue methods for each record
and Encode<Name>/Decode<Name> functions for each union.
*/
package jsonkit
