package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/basislab/orthoserve/internal/ortho"
	"github.com/basislab/orthoserve/internal/parse"
)

// runBasis computes an orthonormal basis from free-text vector input.
func runBasis(cmd *cobra.Command, args []string) error {
	tolerance, _ := cmd.Flags().GetFloat64("tolerance")
	strict, _ := cmd.Flags().GetBool("strict")

	batch, err := readBatch(args)
	if err != nil {
		return err
	}

	result, err := ortho.OrthonormalizeWithOptions(batch, ortho.Options{
		Tolerance: tolerance,
		Strict:    strict,
	})
	if err != nil {
		return err
	}

	for _, u := range result.Basis {
		fmt.Println(formatVector(u))
	}
	fmt.Printf("rank: %d (input %d, dimension %d)\n", result.Rank, len(batch), result.Dimension)
	if !result.IsLinearlyIndependent(len(batch)) {
		fmt.Printf("note: %d dependent vector(s) skipped\n", len(batch)-result.Rank)
	}

	return nil
}

// runCheck verifies that the input vectors form an orthonormal set.
func runCheck(cmd *cobra.Command, args []string) error {
	tolerance, _ := cmd.Flags().GetFloat64("tolerance")

	batch, err := readBatch(args)
	if err != nil {
		return err
	}

	result, err := ortho.Check(batch, tolerance)
	if err != nil {
		return err
	}

	for _, detail := range result.Details {
		fmt.Println(detail)
	}
	if !result.IsOrthonormal {
		return fmt.Errorf("set is not orthonormal")
	}

	return nil
}

// readBatch parses vectors from the named file, or stdin when no file is
// given.
func readBatch(args []string) ([][]float64, error) {
	var raw []byte
	var err error

	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	return parse.Vectors(string(raw))
}

// formatVector renders a vector with fixed 4-decimal components. Rounding
// is display-only; the engine output is never rounded.
func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4f", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
