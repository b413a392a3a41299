// Package daybook holds module-level metadata.
package daybook

// Version is the daybook release version.
const Version = "0.1.0"
