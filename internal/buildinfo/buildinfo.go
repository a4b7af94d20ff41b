// Package buildinfo exposes values injected at link time, e.g.
//
//	go build -ldflags "-X github.com/dmitrijs2005/jobhub/internal/buildinfo.Version=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

var (
	Version = notAvailable
	Date    = notAvailable
	Commit  = notAvailable
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(Version))
	fmt.Fprintf(w, "Build date: %s\n", orNA(Date))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(Commit))
}

// UserAgent is the User-Agent sent with API requests.
func UserAgent() string {
	return "jobhub-cli/" + orNA(Version)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
