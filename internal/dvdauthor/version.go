package dvdauthor

const (
	AppName = "go-dvdauthor"
	AppURL  = "https://github.com/autobrr/go-dvdauthor"
)

var AppVersion = "dev"

func SetAppVersion(version string) {
	if version != "" {
		AppVersion = version
	}
}

// FormatVersion renders a version for display, "v" prefixed unless it is
// a development build.
func FormatVersion(version string) string {
	if version == "" || version == "dev" {
		return "dev"
	}
	if version[0] >= '0' && version[0] <= '9' {
		return "v" + version
	}
	return version
}
