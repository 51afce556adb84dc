// Package config loads droidctl settings: adb binary location, the delays
// inserted after each gesture, and the app-name to package-id registry.
// Settings live in config.yaml under the droidctl home directory; the file
// is optional and anything it omits keeps its default.
package config
