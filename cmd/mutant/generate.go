package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/mutant/internal/classifier"
	"svw.info/mutant/internal/domain"
	"svw.info/mutant/internal/generator"
)

var (
	genSize int
	genKind string
	genSeed int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a random DNA matrix of the requested kind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind domain.Kind
		switch strings.ToLower(strings.TrimSpace(genKind)) {
		case "mutant":
			kind = domain.Mutant
		case "human":
			kind = domain.Human
		default:
			return fmt.Errorf("unknown kind %q: want mutant|human", genKind)
		}
		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g := generator.NewRandomGenerator(classifier.New(cfg.Classifier.Parallel), cfg.Classifier.Alphabet)
		dna, st, err := g.Generate(cmd.Context(), seed, genSize, kind)
		if err != nil {
			return err
		}
		logger.Debug("generated",
			zap.Int64("seed", seed),
			zap.Int("attempts", st.Attempts),
			zap.Duration("dur", st.Duration),
		)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(dna, "\n"))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&genSize, "size", "n", 6, "side length of the matrix")
	generateCmd.Flags().StringVarP(&genKind, "kind", "k", "mutant", "mutant|human")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 picks one from the clock)")
}
