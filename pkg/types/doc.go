// Package types defines the reusable CWMP value types used by generated
// data-model objects.
//
// Address and prefix types are string based and hold their canonical
// textual form, so they pass through every codec unchanged. Use the Parse
// functions to canonicalise input and Valid to check a value read from a
// peer. DateTime, HexBinary and Base64 carry their own text encodings.
package types
