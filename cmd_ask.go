package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chessAdvisor/game"
	"chessAdvisor/render"
	"chessAdvisor/server"
)

var (
	askFEN   string
	askJSON  bool
	askPlain bool
)

// askCmd answers one question and exits
var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Ask a question about a position",
	Long: `Answers a free-text question about the position given with --fen.

Example:
  chessAdvisor ask "what's the best move?"
  chessAdvisor ask --fen "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1" any tactics
  chessAdvisor ask --json explain the move Nf3`,
	RunE: runAsk,
}

var analyzeFEN string

// analyzeCmd prints the goal tiers and the chosen plan
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show the goal breakdown for a position",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

func init() {
	askCmd.Flags().StringVar(&askFEN, "fen", game.StartFEN, "Position in FEN")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "Print the structured answer as JSON")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "Disable colours")
	analyzeCmd.Flags().StringVar(&analyzeFEN, "fen", game.StartFEN, "Position in FEN")
}

func runAsk(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	resp, err := session.Handle(askFEN, strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case askJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(server.AskResponse{Raw: resp, Formatted: render.Format(resp)})
	case askPlain:
		fmt.Fprintln(out, render.Format(resp))
	default:
		fmt.Fprintln(out, render.Styled(resp))
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	analysis, err := session.Analyze(analyzeFEN)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.FormatAnalysis(analysis))
	return nil
}
