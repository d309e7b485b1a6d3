package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Confirm writes prompt to w and reads one line from r, accepting a
// case-insensitive "y". Anything else, including EOF, declines.
func Confirm(w io.Writer, r io.Reader, prompt string) bool {
	fmt.Fprint(w, prompt)
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(scanner.Text()), "y")
}

// confirmDestructive gates a destructive operation behind an interactive
// prompt. A non-terminal stdin cannot answer a prompt, so it is an error
// rather than a silent decline; --yes bypasses the prompt entirely.
func confirmDestructive(cmd *cobra.Command, prompt string) (bool, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return false, errors.New("confirmation required but stdin is not a terminal (use --yes)")
	}
	return Confirm(cmd.OutOrStdout(), in, prompt), nil
}
