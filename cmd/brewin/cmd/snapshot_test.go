package cmd

import (
	"testing"

	"github.com/anushkanayak15/brewin-go/internal/ast"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestRunProgramOutputSnapshot snapshots the full stdout of a handful of
// representative programs with go-snaps, instead of hand-written
// string-contains assertions.
func TestRunProgramOutputSnapshot(t *testing.T) {
	defer snaps.Clean(t)

	point := ast.StructNode("Point", ast.FieldNode("x", "int"), ast.FieldNode("y", "int"))

	tests := []struct {
		name    string
		body    []*ast.Node
		structs []*ast.Node
	}{
		{
			name: "print_arithmetic",
			body: []*ast.Node{
				ast.CallNode("print", ast.BinaryNode(ast.Add, ast.IntNode(2), ast.IntNode(3))),
			},
		},
		{
			name: "print_string_concat",
			body: []*ast.Node{
				ast.CallNode("print", ast.BinaryNode(ast.Add, ast.StringNode("brew"), ast.StringNode("in"))),
			},
		},
		{
			name: "print_struct_field_after_new",
			body: []*ast.Node{
				ast.VarDefNode("p", "Point"),
				ast.AssignNode("p", ast.NewNode("Point")),
				ast.CallNode("print", ast.VarNode("p.x")),
			},
			structs: []*ast.Node{point},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := programJSONWithStructs(t, tc.body, tc.structs)

			oldInline := inlineProgram
			defer func() { inlineProgram = oldInline }()
			inlineProgram = src

			out, err := captureStdout(t, func() error {
				return runProgram(runCmd, nil)
			})
			if err != nil {
				t.Fatalf("runProgram: %v", err)
			}
			snaps.MatchSnapshot(t, out)
		})
	}
}
