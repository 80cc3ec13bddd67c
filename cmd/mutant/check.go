package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/mutant/internal/classifier"
	"svw.info/mutant/internal/domain"
)

var (
	checkFile  string
	checkStore bool
)

var checkCmd = &cobra.Command{
	Use:   "check [ROW...]",
	Short: "Classify one DNA matrix (exit 0 mutant, 1 human)",
	Long: `Classifies a DNA matrix given as rows on the command line, a single
comma-joined argument, or a file (--file, "-" for stdin) with one row per line.

Example:
  mutant check ATGCGA CAGTGC TTATGT AGAAGG CCCCTA TCACTG`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "read rows from file, - for stdin")
	checkCmd.Flags().BoolVar(&checkStore, "store", false, "record the verdict in the configured storage")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var src io.Reader
	switch checkFile {
	case "":
	case "-":
		src = cmd.InOrStdin()
	default:
		f, err := os.Open(checkFile)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	dna, err := readDNA(args, src)
	if err != nil {
		return err
	}

	var mutant bool
	if checkStore {
		uc, st, err := newService(cfg, logger)
		if err != nil {
			return err
		}
		defer st.Close()
		if mutant, err = uc.Analyze(cmd.Context(), dna); err != nil {
			return err
		}
	} else {
		c := classifier.New(cfg.Classifier.Parallel)
		ok, _, err := c.Classify(cmd.Context(), dna)
		if err != nil {
			return err
		}
		mutant = ok
	}

	r := classifier.Scan(dna)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", kindOf(mutant))
	fmt.Fprintf(out, "  %-13s %d\n", domain.Horizontal.String(), r.Horizontal)
	fmt.Fprintf(out, "  %-13s %d\n", domain.Vertical.String(), r.Vertical)
	fmt.Fprintf(out, "  %-13s %d\n", domain.Diagonal.String(), r.Diagonal)
	fmt.Fprintf(out, "  %-13s %d\n", domain.AntiDiagonal.String(), r.AntiDiagonal)
	if !mutant {
		exitCode = 1
	}
	return nil
}

func kindOf(mutant bool) domain.Kind {
	if mutant {
		return domain.Mutant
	}
	return domain.Human
}

// readDNA collects rows from args, or from src when args is empty. A single
// argument containing commas is split as a canonical key.
func readDNA(args []string, src io.Reader) (domain.DNA, error) {
	if len(args) == 1 && strings.Contains(args[0], ",") {
		return domain.ParseKey(strings.TrimSpace(args[0])), nil
	}
	if len(args) > 0 {
		return domain.DNA(args), nil
	}
	if src == nil {
		return nil, fmt.Errorf("no rows given: pass rows as arguments or use --file")
	}
	var dna domain.DNA
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dna = append(dna, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(dna) == 0 {
		return nil, fmt.Errorf("no rows read")
	}
	return dna, nil
}
