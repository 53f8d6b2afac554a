// Package tr181 contains the object types of the TR-181 Device:2 data
// model: device information, DNS client, Ethernet, IEEE 1905, DHCPv6,
// routing, QoS and bridging.
//
// The types are generated from docs/objects/tr181 by cwmp-objgen.
package tr181
