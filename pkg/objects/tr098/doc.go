// Package tr098 contains InternetGatewayDevice object types from TR-098.
package tr098
