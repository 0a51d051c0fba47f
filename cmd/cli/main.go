package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "partyledger-cli",
		Short: "PartyLedger CLI tool",
		Long:  `A command line interface for interacting with the PartyLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the PartyLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		statementCmd("client", "clients"),
		statementCmd("supplier", "suppliers"),
		verifyCmd(),
		healthCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// statementCmd builds the per-party-type statement command. resource is the
// API collection name the party type lives under.
func statementCmd(use, resource string) *cobra.Command {
	var (
		from      string
		to        string
		printable bool
	)

	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: "Fetch a " + use + " account statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := statementURL(baseURL, resource, args[0], from, to, printable)

			client := &http.Client{Timeout: timeout}
			resp, err := client.Get(target)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read response: %w", err)
			}

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
			}

			if printable {
				fmt.Print(string(body))
				return nil
			}

			var statement map[string]any
			if err := json.Unmarshal(body, &statement); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(statement)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&printable, "print", false, "Fetch the printable HTML statement")

	return cmd
}

// statementTotals is the slice of the statement response the verify command
// needs to re-check the fold.
type statementTotals struct {
	Party struct {
		OpeningBalance decimal.Decimal `json:"opening_balance"`
	} `json:"party"`
	TotalDebit   decimal.Decimal `json:"total_debit"`
	TotalCredit  decimal.Decimal `json:"total_credit"`
	FinalBalance decimal.Decimal `json:"final_balance"`
}

// consistent reports whether the totals close under either orientation of the
// fold: debit-positive for clients, credit-positive for suppliers.
func (s statementTotals) consistent() bool {
	net := s.FinalBalance.Sub(s.Party.OpeningBalance)
	return net.Equal(s.TotalDebit.Sub(s.TotalCredit)) || net.Equal(s.TotalCredit.Sub(s.TotalDebit))
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <client|supplier> <id>",
		Short: "Re-check a statement's totals against its opening and final balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource := ""
			switch args[0] {
			case "client":
				resource = "clients"
			case "supplier":
				resource = "suppliers"
			default:
				return fmt.Errorf("unknown party type %q", args[0])
			}

			client := &http.Client{Timeout: timeout}
			resp, err := client.Get(statementURL(baseURL, resource, args[1], "", "", false))
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read response: %w", err)
			}

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
			}

			var totals statementTotals
			if err := json.Unmarshal(body, &totals); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if !totals.consistent() {
				return fmt.Errorf("statement inconsistent: opening %s, debit %s, credit %s, final %s",
					totals.Party.OpeningBalance, totals.TotalDebit, totals.TotalCredit, totals.FinalBalance)
			}

			fmt.Println("Statement consistent")
			return nil
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			resp, err := client.Get(baseURL + "/health")
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unhealthy (status %d)", resp.StatusCode)
			}

			fmt.Println("OK")
			return nil
		},
	}
}

func statementURL(base, resource, id, from, to string, printable bool) string {
	target := fmt.Sprintf("%s/api/v1/%s/%s/statement", base, resource, url.PathEscape(id))
	if printable {
		target += "/print"
	}

	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return target
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
