// Package tr262 contains the femto access point management object types
// of TR-262 (FAP): GPS and performance management.
package tr262
