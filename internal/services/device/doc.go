// Package device probes facts about the connected device: root access,
// screen resolution, and the touch input device with its axis ranges.
// Probes are cached for the life of the process, matching how often these
// facts can actually change.
package device
