package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iho/partyledger/internal/domain"
)

// TextRenderer renders a statement as aligned plain text, for terminals.
type TextRenderer struct{}

// NewTextRenderer creates a new TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render writes the statement table to w.
func (r *TextRenderer) Render(w io.Writer, statement *domain.Statement) error {
	fmt.Fprintf(w, "Statement: %s\n", statement.Party.Name)
	if !statement.Period.IsZero() {
		if statement.Period.From != nil {
			fmt.Fprintf(w, "From: %s\n", statement.Period.From.Format("2006-01-02"))
		}
		if statement.Period.To != nil {
			fmt.Fprintf(w, "To:   %s\n", statement.Period.To.Format("2006-01-02"))
		}
	}
	fmt.Fprintf(w, "Opening balance: %s\n\n", statement.Party.OpeningBalance)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tDEBIT\tCREDIT\tBALANCE")
	for _, e := range statement.Entries {
		debit, credit := "", ""
		if !e.Debit.IsZero() {
			debit = e.Debit.String()
		}
		if !e.Credit.IsZero() {
			credit = e.Credit.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Date.Format("2006-01-02"), e.Description, debit, credit, e.Balance)
	}
	fmt.Fprintf(tw, "\tTOTALS\t%s\t%s\t%s\n",
		statement.Totals.TotalDebit, statement.Totals.TotalCredit, statement.Totals.FinalBalance)

	return tw.Flush()
}
