package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aidu/english/internal/llm"
	"github.com/aidu/english/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect question-generation requests",
}

// withStore opens the database for commands that only read the request
// history. The progress store and catalog are not needed.
func withStore(cmd *cobra.Command, fn func(st *store.Store, out io.Writer) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()
	return fn(st, cmd.OutOrStdout())
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failedOnly, _ := cmd.Flags().GetBool("failed")

		return withStore(cmd, func(st *store.Store, out io.Writer) error {
			reqs, err := st.Events().LLMRequests(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
			if err != nil {
				return fmt.Errorf("query requests: %w", err)
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "ID\tTIME\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
			shown := 0
			for _, r := range reqs {
				if failedOnly && r.Success {
					continue
				}
				mark := "✓"
				if !r.Success {
					mark = "✗"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
					truncate(r.ID, 8), r.CreatedAt.Local().Format("01-02 15:04:05"), r.Purpose,
					truncate(r.Model, 28), r.InputTokens, r.OutputTokens, r.LatencyMs, mark)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, "No requests recorded.")
				return nil
			}
			return tw.Flush()
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id-prefix>",
	Short: "Show one request with its prompt and raw reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store, out io.Writer) error {
			r, err := st.Events().LLMRequest(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get request: %w", err)
			}
			if r == nil {
				return fmt.Errorf("no single request matches %q", args[0])
			}

			tw := newTable(out)
			fmt.Fprintf(tw, "ID\t%s\n", r.ID)
			fmt.Fprintf(tw, "Time\t%s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(tw, "Model\t%s (%s)\n", r.Model, r.Provider)
			fmt.Fprintf(tw, "Purpose\t%s\n", r.Purpose)
			fmt.Fprintf(tw, "Tokens\t%d in, %d out\n", r.InputTokens, r.OutputTokens)
			if cost, ok := llm.EstimateCost(r.Model, r.InputTokens, r.OutputTokens); ok {
				fmt.Fprintf(tw, "Cost\t%s\n", formatCost(cost))
			}
			fmt.Fprintf(tw, "Latency\t%dms\n", r.LatencyMs)
			if r.ErrorMessage != "" {
				fmt.Fprintf(tw, "Error\t%s\n", r.ErrorMessage)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			printSection(out, "REQUEST", r.RequestBody)
			printSection(out, "RESPONSE", r.ResponseBody)
			return nil
		})
	},
}

func printSection(out io.Writer, name, body string) {
	rule := strings.Repeat("─", 60)
	if body == "" {
		body = "(empty)"
	}
	fmt.Fprintf(out, "\n%s\n%s\n%s\n%s\n", rule, name, rule, strings.TrimRight(body, "\n"))
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Token usage per activity and estimated cost per model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store, out io.Writer) error {
			ctx := cmd.Context()
			byPurpose, err := st.Events().UsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(byPurpose) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded yet.")
				return nil
			}

			tw := newTable(out)
			fmt.Fprintln(tw, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tAVG MS")
			var sum store.LLMUsage
			for _, u := range byPurpose {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", u.Key, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
				sum.Calls += u.Calls
				sum.InputTokens += u.InputTokens
				sum.OutputTokens += u.OutputTokens
			}
			fmt.Fprintf(tw, "total\t%d\t%d\t%d\t\n", sum.Calls, sum.InputTokens, sum.OutputTokens)
			if err := tw.Flush(); err != nil {
				return err
			}

			byModel, err := st.Events().UsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			fmt.Fprintln(out)
			tw = newTable(out)
			fmt.Fprintln(tw, "MODEL\tCALLS\tCOST (USD)")
			var total float64
			var unpriced []string
			for _, u := range byModel {
				cost := "?"
				if c, ok := llm.EstimateCost(u.Key, u.InputTokens, u.OutputTokens); ok {
					total += c
					cost = formatCost(c)
				} else {
					unpriced = append(unpriced, u.Key)
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\n", truncate(u.Key, 32), u.Calls, cost)
			}
			label := "total"
			if len(unpriced) > 0 {
				label = "total (partial)"
			}
			fmt.Fprintf(tw, "%s\t\t%s\n", label, formatCost(total))
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(unpriced) > 0 {
				fmt.Fprintf(out, "\nNo price known for: %s\n", strings.Join(unpriced, ", "))
			}
			return nil
		})
	},
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show which provider question generation would use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, fromEnv, err := llm.ResolveConfig()
		if err != nil {
			fmt.Fprintf(out, "No provider configured (%v).\nQuizzes use the built-in question bank.\n", err)
			return nil
		}
		if cfg.Provider == "mock" {
			fmt.Fprintln(out, "Provider is mock; quizzes use the built-in question bank.")
			return nil
		}
		source := "AIDU_* variables"
		if !fromEnv {
			source = "vendor API key variable"
		}

		tw := newTable(out)
		fmt.Fprintf(tw, "Provider\t%s (from %s)\n", cfg.Provider, source)
		fmt.Fprintf(tw, "Model\t%s\n", cfg.Model())
		fmt.Fprintf(tw, "Timeout\t%s\n", cfg.Timeout)
		fmt.Fprintf(tw, "Attempts\t%d\n", cfg.Retry.MaxAttempts)
		return tw.Flush()
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only this purpose, e.g. grammar-questions")
	llmListCmd.Flags().Bool("failed", false, "Only failed requests")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd, llmCheckCmd)
}
