// Package uplug invokes the external Uplug toolkit for tokenization.
//
// Uplug performs its own paragraph/sentence numbering and writes the
// persisted document format directly, so this adapter works
// file-to-file and bypasses the document builder entirely.
package uplug

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/blakuxberry/preprocess-corpora-fork/internal/logging"
)

// DefaultBin is the uplug executable resolved from PATH unless
// overridden.
const DefaultBin = "uplug"

// command builds the shell command line. The general pre/basic module
// is listed before the language-specific one so Uplug falls back to it
// when no rules exist for the language.
func command(bin, input, output, language string) string {
	return fmt.Sprintf("%s -f pre/basic pre/%s/basic -in %s > %s",
		quote(bin), language, quote(input), quote(output))
}

// quote shell-quotes a single argument.
func quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n\"'`$\\#&|;<>(){}*?[]~!") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// Run tokenizes input into output using Uplug. The subprocess's exit
// status and error stream are deliberately not translated into an
// error: a failing tool manifests as missing or empty output. The
// error stream is still captured and logged at debug level.
func Run(input, output, language, bin string) error {
	if bin == "" {
		bin = DefaultBin
	}
	cmdline := command(bin, input, output, language)
	logging.Debug("running uplug", "command", cmdline)

	var stderr bytes.Buffer
	cmd := exec.Command("sh", "-c", cmdline)
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logging.Debug("uplug exited with error", "err", err, "stderr", stderr.String())
	} else if stderr.Len() > 0 {
		logging.Debug("uplug stderr", "stderr", stderr.String())
	}
	return nil
}
