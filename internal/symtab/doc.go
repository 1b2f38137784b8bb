// Package symtab turns an analyzed package graph into assembler symbol
// names and encoded struct tags.
//
// A package path is run through the struct tag mangling before encoding, so
// slashes, dashes and dots in import paths become .xNN escapes and cannot be
// confused with the dot that separates the path from the object name.
// Object names are encoded with encodeid.
package symtab
