// Package input injects gestures and key events into the device. Taps can
// go through three delivery paths: raw sendevent sequences on rooted
// devices (hardest to detect), a short humanized `input swipe`, or a plain
// `input tap`.
package input
