// Package build holds build-time information.
package build

// These default to development values and are overwritten by linker flags.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// Summary renders the version followed by commit and date.
func Summary() string {
	return Version + " (commit: " + Commit + ", date: " + Date + ")"
}
