// Command sanskritmorphy is the CLI surface over the segmenter and
// derivation stack: a thin layer that loads a configuration bundle, runs
// one of the two core operations, and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steosofficial/sanskritmorphy/config"
	"github.com/steosofficial/sanskritmorphy/lexicon"
	"github.com/steosofficial/sanskritmorphy/prakriya"
	"github.com/steosofficial/sanskritmorphy/sandhi"
	"github.com/steosofficial/sanskritmorphy/scoring"
	"github.com/steosofficial/sanskritmorphy/segment"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sanskritmorphy",
		Short: "Segment and analyze Sanskrit text",
	}
	root.AddCommand(newSegmentCmd())
	root.AddCommand(newDeriveDemoCmd())
	return root
}

func newSegmentCmd() *cobra.Command {
	var configPath, lexiconText string
	cmd := &cobra.Command{
		Use:   "segment [text]",
		Short: "Segment Sanskrit text into words and print their lemmas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSegment(cmd, configPath, lexiconText, args[0])
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a sanskritmorphy config YAML file")
	cmd.Flags().StringVar(&lexiconText, "lexicon-text", "", "plain-text lexicon to use instead of the configured dictionary")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runSegment(cmd *cobra.Command, configPath, lexiconText, text string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	rules, err := sandhi.LoadRulesCSV(cfg.SandhiRules)
	if err != nil {
		return err
	}

	var lex lexicon.Lexicon
	if lexiconText != "" {
		lex, err = lexicon.LoadMemoryText(lexiconText)
	} else {
		var dawg *lexicon.DAWG
		dawg, err = lexicon.LoadDAWG(cfg.LexiconPath)
		if err == nil {
			defer dawg.Close()
			lex = dawg
		}
	}
	if err != nil {
		return err
	}

	model, err := scoring.LoadModel(cfg.LemmaCounts, cfg.TransitionCounts)
	if err != nil {
		return err
	}

	s := segment.NewSegmenter(sandhi.NewSplitter(rules), lex, model)
	words, err := s.Segment(text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, w := range words {
		lemma := w.Lemma()
		fmt.Fprintf(out, "%s/%s\n", w.Text, lemma)
	}
	return nil
}

func newDeriveDemoCmd() *cobra.Command {
	var choices int
	cmd := &cobra.Command{
		Use:   "derive-demo",
		Short: "Run the derivation stack against a built-in demo with N independent optional rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeriveDemo(cmd, choices)
		},
	}
	cmd.Flags().IntVar(&choices, "choices", 1, "number of independent optional rules the demo derivation consults")
	return cmd
}

// runDeriveDemo builds a derive function that unconditionally consults N
// independent optional rules named R0..R(N-1), making the stack's seeding
// rule directly observable: the result count must be 2^N.
func runDeriveDemo(cmd *cobra.Command, n int) error {
	if n < 0 {
		return fmt.Errorf("--choices must be non-negative, got %d", n)
	}

	derive := func(p *prakriya.Prakriya) error {
		for i := 0; i < n; i++ {
			p.NextDecision(fmt.Sprintf("R%d", i), prakriya.Accept)
		}
		return nil
	}

	results := prakriya.NewStack().FindAll(derive, false)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d derivations\n", len(results))
	for _, p := range results {
		choices := p.RuleChoices()
		parts := make([]string, len(choices))
		for i, c := range choices {
			parts[i] = c.String()
		}
		fmt.Fprintln(out, parts)
	}
	return nil
}
