package version

var (
	// version contains version of purviewcfg.
	version = ""
	// commit contains commit hash of purviewcfg.
	commit = ""
)

// Version returns the version of purviewcfg, or "dev" if it
// was not set at build time.
func Version() string {
	if len(version) == 0 {
		return "dev"
	}
	return version
}

// Commit returns the commit hash of purviewcfg.
func Commit() string {
	return commit
}
