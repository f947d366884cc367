// Package mintline holds module-wide metadata.
package mintline

// Version is the mintline release version.
const Version = "0.1.0"
