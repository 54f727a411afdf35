// Command jslint is a small demonstration CLI over the document package's
// Go API. It reads a file, optionally applies a sequence of edits from a
// script (to demo incremental relinting), and prints the resulting
// diagnostics. It talks to document.Document directly rather than through
// any handle-based facade.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/jslint/document"
	"github.com/example/jslint/invariant"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	editsPath string
	verbose   bool
)

func newLogger() *zap.Logger {
	if verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			return l
		}
	}
	return zap.NewNop()
}

func loadDocument(logger *zap.Logger, path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	d := document.New()
	d.SetLogger(logger)
	d.ReplaceText(0, 0, 0, 0, string(data))
	return d, nil
}

// edit is one line of an edit script: replace [startLine,startChar) to
// [endLine,endChar) with text. Lines are tab-separated:
// startLine\tstartChar\tendLine\tendChar\ttext
type edit struct {
	startLine, startChar, endLine, endChar int
	text                                   string
}

func loadEditScript(path string) ([]edit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading edit script %s", path)
	}
	defer f.Close()

	var edits []edit
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 5)
		if len(fields) != 5 {
			return nil, errors.Errorf("edit script %s:%d: expected 5 tab-separated fields, got %d", path, lineNo, len(fields))
		}
		e, err := parseEditFields(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "edit script %s:%d", path, lineNo)
		}
		edits = append(edits, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading edit script %s", path)
	}
	return edits, nil
}

func parseEditFields(fields []string) (edit, error) {
	nums := make([]int, 4)
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return edit{}, errors.Wrapf(err, "field %d", i)
		}
		nums[i] = n
	}
	return edit{
		startLine: nums[0], startChar: nums[1],
		endLine: nums[2], endChar: nums[3],
		text: unescapeTabAndNewline(fields[4]),
	}, nil
}

func unescapeTabAndNewline(s string) string {
	s = strings.ReplaceAll(s, "\\n", "\n")
	s = strings.ReplaceAll(s, "\\t", "\t")
	return s
}

func printDiagnostics(path string, diags []document.Diagnostic) {
	for _, d := range diags {
		fmt.Printf("%s:%d:%d: %s: %s [%s]\n", path, d.StartLine+1, d.StartCharacter+1, severityLabel(d.Severity), d.Message, d.Code)
	}
}

// severityLabel renders document.Severity's closed two-value set. Seeing
// anything else here means document.Diagnostic was constructed with a
// severity outside that set, which is this tool's own bug, not something
// the file being linted could cause.
func severityLabel(s document.Severity) string {
	switch s {
	case document.SeverityError:
		return "error"
	case document.SeverityWarning:
		return "warning"
	default:
		invariant.Unreachable(fmt.Sprintf("document.Diagnostic with unknown severity %d", s))
		return ""
	}
}

func runLint(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := newLogger()
	invariant.SetLogger(logger)

	d, err := loadDocument(logger, path)
	if err != nil {
		return err
	}

	if editsPath != "" {
		edits, err := loadEditScript(editsPath)
		if err != nil {
			return err
		}
		for _, e := range edits {
			d.ReplaceText(e.startLine, e.startChar, e.endLine, e.endChar, e.text)
		}
	}

	diags := d.Lint()
	printDiagnostics(path, diags)
	if hasError(diags) {
		os.Exit(1)
	}
	return nil
}

func hasError(diags []document.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == document.SeverityError {
			return true
		}
	}
	return false
}

func main() {
	root := &cobra.Command{
		Use:   "jslint <file.js>",
		Short: "lint a JavaScript file using the incremental document model",
		Args:  cobra.ExactArgs(1),
		RunE:  runLint,
	}
	root.Flags().StringVar(&editsPath, "edits", "", "path to a tab-separated edit script applied before linting, to demo incremental relinting")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable development logging of document operations")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
