package cli

import (
	"fmt"
	"io"

	"github.com/autobrr/go-dvdauthor/internal/dvdauthor"
)

var appVersion = "dev"

func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "%s, %s\n", dvdauthor.AppName, dvdauthor.FormatVersion(appVersion))
}
