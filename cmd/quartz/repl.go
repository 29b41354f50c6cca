package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/quartzjs/quartz/ast"
	"github.com/quartzjs/quartz/parser"
	"github.com/quartzjs/quartz/source"
)

// runREPL reads lines from the console, parses each one as a program with
// a console origin, and prints either the tree shape or the diagnostic.
func runREPL() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("quartz console (Ctrl+D to exit)")

	for {
		text, err := line.Prompt("> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		line.AppendHistory(text)

		program, err := parser.ParseSource(source.FromConsole(text))
		if err != nil {
			var syn *parser.SyntaxError
			if errors.As(err, &syn) {
				fmt.Println(syn.Diagnostic())
				continue
			}
			return err
		}
		ast.CheckParents(program)
		for _, stmt := range program.Body {
			fmt.Println(stmt)
		}
	}
}
