// Package encodeid encodes source identifiers and struct field tags into
// text that is safe to use in assembler symbols and type descriptors.
//
// Identifier encoding keeps ASCII letters, digits, underscore and dot as
// they are and replaces every multi-byte UTF-8 character with
//
//	..uXXXX      for code points below U+10000
//	..UXXXXXXXX  for all others
//
// using lowercase, zero-padded hex. The encoding is only unambiguous if the
// input never contains ..u or ..U itself, so Encode refuses such input.
//
// Struct tags go through MangleStructTag first, which keeps ASCII letters,
// digits and underscore, replaces every other single byte (including dot)
// with .xNN and leaves multi-byte characters for the identifier encoding.
// Because dot is escaped, a mangled tag never holds two adjacent dots and
// the second pass cannot mistake tag content for one of its own markers.
package encodeid
