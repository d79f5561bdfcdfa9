package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders compile errors with source context in a caret style.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders one error:
//
//	error[E0003]: expected type 'Number', got 'Int32'
//	  --> main.ksc:4:12
//	   |
//	 4 |   Number x = count;
//	   |
func (r *Reporter) Format(err *CompileError) string {
	var result strings.Builder

	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	result.WriteString(fmt.Sprintf("%s[%s]: %s\n", red("error"), err.Code, err.Message))

	lineNumberWidth := len(fmt.Sprintf("%d", err.Position.Line))
	if lineNumberWidth < 2 {
		lineNumberWidth = 2
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("|")))

	if err.Position.Line > 0 && err.Position.Line <= len(r.lines) {
		lineContent := r.lines[err.Position.Line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
			dim("|"),
			lineContent))
		marker := strings.Repeat(" ", max(0, err.Position.Column-1)) + "^"
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("|"), bold(marker)))
	}

	return result.String()
}
