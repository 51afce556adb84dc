// Package domain defines the value types and service interfaces shared by
// the droidctl CLI, independent of how adb is invoked or its output parsed.
package domain
