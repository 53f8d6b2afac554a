// Package tr196 contains femto access point object types of TR-196
// (FAPService), including the LTE MBSFN configuration.
//
// SFConfigList.SubFrameAllocations is kept scalar as published even though
// its description reads as a list; see the review note in its metadata.
package tr196
