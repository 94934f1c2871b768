package version

import (
	"fmt"
	"runtime"
)

// Version is overridden at build time with -ldflags "-X ...version.Version=...".
var Version = "dev"

// String is the long form shown by the version command.
func String() string {
	return fmt.Sprintf("check_mullvad_account %s (%s %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
