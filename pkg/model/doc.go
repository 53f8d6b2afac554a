// Package model implements the schema metadata behind every CWMP
// data-model object.
//
// # Object Hierarchy
//
// CWMP data models (TR-098, TR-104, TR-135, TR-181, TR-196, TR-262) are
// trees of objects addressed by dotted paths:
//
//	Device.DNS.Client
//	Device.DNS.Client.Server.{i}
//	STBService.{i}.AVStreams.AVStream.{i}
//
// A "{i}" segment marks a multi-instance object (a table). Concrete paths
// substitute 1-based instance numbers for each placeholder.
//
// # Objects
//
// Every generated object type implements Object and returns a shared
// *ObjectMetadata describing:
//   - Parameters: typed values with access, units, bounds, defaults
//     and active-notification policy
//   - Children: singleton sub-objects and tables
//   - Unique keys: parameter sets identifying a table row
//
// The object types themselves are passive value holders. Validation,
// encoding and introspection read the metadata; see the validate, wire
// and inspect packages.
//
// # Registry
//
// Generated packages register their metadata and a constructor at init
// time. Lookup and New resolve template or concrete paths to them.
package model
