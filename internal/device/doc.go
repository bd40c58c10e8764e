// Package device enumerates attached deck devices across pluggable
// backends.
//
// The daemon itself ships no hardware driver; drivers (and the terminal
// simulator) implement deck.Device and register an Enumerator here. The
// run command then picks the single attached device; driving more than
// one deck per process is unsupported.
package device
