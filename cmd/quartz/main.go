// Command quartz is a small front-end driver: it tokenizes or parses a
// program and prints the token stream or the AST shape, and carries an
// interactive console for poking at the grammar.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quartzjs/quartz/ast"
	"github.com/quartzjs/quartz/parser"
	"github.com/quartzjs/quartz/parser/scanner"
	"github.com/quartzjs/quartz/source"
)

var evalText string

func main() {
	root := &cobra.Command{
		Use:           "quartz",
		Short:         "Tokenizer and parser front end for the quartz language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	tokensCmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTokens,
	}
	tokensCmd.Flags().StringVarP(&evalText, "eval", "e", "", "program text instead of a file")

	astCmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Parse a program and print its tree shape",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAST,
	}
	astCmd.Flags().StringVarP(&evalText, "eval", "e", "", "program text instead of a file")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive parse console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL()
		},
	}

	root.AddCommand(tokensCmd, astCmd, replCmd)

	if err := root.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func loadBuffer(args []string) (*source.Buffer, error) {
	if evalText != "" {
		return source.FromString(evalText, source.Eval()), nil
	}
	if len(args) == 0 {
		return nil, errors.New("need a file argument or -e text")
	}
	return source.FromFile(args[0])
}

func runTokens(cmd *cobra.Command, args []string) error {
	buf, err := loadBuffer(args)
	if err != nil {
		return err
	}
	tokens, lexErr := scanner.Tokenize(buf)
	if lexErr != nil {
		return &parser.SyntaxError{Loc: lexErr.Loc, Message: lexErr.Message}
	}
	for i, tok := range tokens {
		fmt.Printf("%4d  %-12s %s", i, tok.Loc, tok)
		if tok.Kind.IsOpenBracket() || tok.Kind.IsCloseBracket() {
			fmt.Printf("  (partner %d)", tok.Partner)
		}
		if tok.NewlineAfter {
			fmt.Print("  +newline")
		}
		fmt.Println()
	}
	return nil
}

func runAST(cmd *cobra.Command, args []string) error {
	buf, err := loadBuffer(args)
	if err != nil {
		return err
	}
	program, err := parser.ParseSource(buf)
	if err != nil {
		return err
	}
	ast.CheckParents(program)
	for _, stmt := range program.Body {
		fmt.Println(stmt)
	}
	return nil
}

// reportError prints syntax errors in the diagnostic form and everything
// else as-is.
func reportError(err error) {
	var syn *parser.SyntaxError
	if errors.As(err, &syn) {
		fmt.Fprintln(os.Stderr, syn.Diagnostic())
		return
	}
	fmt.Fprintln(os.Stderr, "quartz:", err)
}
