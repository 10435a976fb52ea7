package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/anushkanayak15/brewin-go/internal/ast"
	"github.com/anushkanayak15/brewin-go/internal/errors"
	"github.com/anushkanayak15/brewin-go/internal/host"
	"github.com/anushkanayak15/brewin-go/internal/interp"
	"github.com/spf13/cobra"
)

var inlineProgram string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Brewin program",
	Long: `Execute a Brewin program described as a JSON-encoded AST.

Examples:
  # Run a program from a file
  brewin run program.json

  # Evaluate inline JSON
  brewin run -e '{"type":"program","lists":{...}}'

  # Read the program from stdin
  cat program.json | brewin run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&inlineProgram, "eval", "e", "", "run inline JSON instead of reading a file")
}

func runProgram(_ *cobra.Command, args []string) error {
	raw, err := loadProgramSource(args)
	if err != nil {
		return err
	}

	program := &ast.Node{}
	if err := json.Unmarshal(raw, program); err != nil {
		return fmt.Errorf("decoding program: %w", err)
	}

	h := host.NewCLIHost(os.Stdout, os.Stdin)
	interpreter := interp.New(h)
	if err := interpreter.Run(program); err != nil {
		if be, ok := errors.As(err); ok {
			return fmt.Errorf("%s error: %s", be.Kind, be.Message)
		}
		return err
	}
	return nil
}

func loadProgramSource(args []string) ([]byte, error) {
	if inlineProgram != "" {
		return []byte(inlineProgram), nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("either provide a file path, -e, or pipe JSON on stdin")
	}
	return data, nil
}
