// Package touch synthesizes low-level touch event sequences for delivery
// via sendevent, including the humanized variants (randomized offsets,
// pressure and timing) used to make synthetic taps resemble real ones.
package touch
