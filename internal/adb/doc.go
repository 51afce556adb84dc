// Package adb invokes the adb binary and returns its output. It is the
// only package that starts processes; everything above it works with the
// Runner interface from internal/domain.
package adb
