// Package tr104 contains the VoIP object types of TR-104 (VoiceService).
package tr104
