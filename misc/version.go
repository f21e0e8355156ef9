// Package misc keeps program identity which is set at build time.
package misc

var (
	appName = "figc"
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns program name, it is used for logger names and temporary
// file patterns.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, overwritten with -ldflags "-X" on release builds.
func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
