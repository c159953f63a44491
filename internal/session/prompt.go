package session

import (
	"bufio"
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lepinkainen/cardscout/internal/errors"
	"github.com/lepinkainen/cardscout/internal/report"
)

// RunInteractive runs the prompt loop: read an identity, analyze it, show
// the summary and offer a CSV export. Resolution and access failures are
// reported and the loop continues; only "exit" or EOF ends the session.
func (o *Orchestrator) RunInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintln(out, "https://steamcommunity.com/id/CustomURL/")
		fmt.Fprint(out, "\nEnter your SteamID64 or Custom URL name (or type 'exit' to quit):\n> ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			return nil
		}

		result, err := o.Analyze(ctx, input)
		if err != nil {
			switch {
			case errors.IsIdentityNotFoundError(err):
				fmt.Fprintf(out, "\nERROR: Could not find a profile for %q.\n", input)
			case errors.IsPrivateProfileError(err):
				var profileErr *errors.PrivateProfileError
				_ = stdErrors.As(err, &profileErr)
				fmt.Fprintf(out, "\nERROR: %s\n%s\n", profileErr.Message, profileErr.Remediation())
			default:
				fmt.Fprintf(out, "\nERROR: %v\n", err)
			}
			continue
		}

		if result.Summary.TotalGames == 0 {
			fmt.Fprintln(out, "\nNo games found for this profile.")
			continue
		}

		fmt.Fprintln(out)
		fmt.Fprint(out, RenderSummary(result.Summary))

		fmt.Fprint(out, "\nSave full analysis to CSV file? (Y/N): ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			filename := report.DefaultCSVFilename(result.SteamID)
			if err := report.WriteCSV(result.Rows, filename); err != nil {
				fmt.Fprintf(out, "ERROR: failed to save CSV: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Data saved to %s\n", filename)
		}
	}
}
