// Package wire serialises data-model objects.
//
// Three formats are supported:
//   - XML: the CWMP element names from the schema, indented, with the
//     object's own name as root element
//   - CBOR: deterministic encoding (RFC 8949 core deterministic rules)
//   - JSON: keyed by the same element names
//
// Absent parameters (nil fields) are omitted in every format, so a decoded
// object reports exactly the parameters that were present in the input.
package wire
