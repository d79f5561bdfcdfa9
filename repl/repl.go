// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"ksc/internal/compiler"
	"ksc/internal/ir"
	"ksc/internal/parser"
)

const PROMPT = ">> "

// Start reads one program per line, compiles it into a fresh module,
// and prints the rendered IR. Every line gets its own compilation
// session; nothing carries over between lines.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for count := 1; ; count++ {
		fmt.Print(PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		program, err := parser.Parse("repl", line)
		if err != nil {
			fmt.Print(parser.FormatError(line, err))
			continue
		}

		module, err := compiler.New().Compile(fmt.Sprintf("repl_%d", count), program)
		if err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Print(ir.Print(module))
	}
}
