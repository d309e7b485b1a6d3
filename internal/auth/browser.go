package auth

import (
	"os/exec"
	"runtime"
)

// openBrowser makes a best-effort attempt to open url in the user's browser.
// Failure is not an error: the URL is always printed as a fallback.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
