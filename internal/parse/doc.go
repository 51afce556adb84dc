// Package parse turns the semi-structured text printed by adb and the
// on-device tools (wm, getevent, dumpsys) into values. All functions are
// pure; they never talk to a device.
package parse
