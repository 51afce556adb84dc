// Package app wires application dependencies for the CLI.
//
// It builds the adb runner and the device, input, screen and app services
// from Config, exposing them via the App struct for commands to use.
package app
