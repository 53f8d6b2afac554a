// Package tr135 contains the set-top box object types of TR-135
// (STBService).
package tr135
