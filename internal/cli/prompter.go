package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ledgermark/ledgermark/internal/ledger"
	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Prompter collects ledger input on the terminal, one field per line. An
// empty line (or EOF) dismisses the dialog, mirroring a closed modal.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter. Nil reader/writer default to stdin/stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// CollectTransaction asks for the four transaction fields. It returns
// ok=false when the user cancels at any field.
func (p *Prompter) CollectTransaction(ctx context.Context, kind model.Kind, accounts, categories []string) (ledger.TransactionInput, bool, error) {
	var input ledger.TransactionInput

	fmt.Fprintln(p.writer, FormatTitle("Add "+string(kind)))
	fmt.Fprintln(p.writer, SubtleStyle.Render("(empty input cancels)"))

	amount, ok, err := p.promptAmount(ctx)
	if err != nil || !ok {
		return input, false, err
	}
	input.Amount = amount

	description, ok, err := p.promptLine(ctx, "Description")
	if err != nil || !ok {
		return input, false, err
	}
	input.Description = description

	account, ok, err := p.promptChoice(ctx, "Account", accounts)
	if err != nil || !ok {
		return input, false, err
	}
	input.Account = account

	category, ok, err := p.promptChoice(ctx, "Category", categories)
	if err != nil || !ok {
		return input, false, err
	}
	input.Category = category

	return input, true, nil
}

// CollectDateRange asks for the report's start and end dates.
func (p *Prompter) CollectDateRange(ctx context.Context) (ledger.DateRange, bool, error) {
	fmt.Fprintln(p.writer, FormatTitle("Create report"))
	fmt.Fprintln(p.writer, SubtleStyle.Render("(empty input cancels)"))

	start, ok, err := p.promptDate(ctx, "Start date (YYYY-MM-DD)")
	if err != nil || !ok {
		return ledger.DateRange{}, false, err
	}

	for {
		end, ok, err := p.promptDate(ctx, "End date (YYYY-MM-DD)")
		if err != nil || !ok {
			return ledger.DateRange{}, false, err
		}
		if end.Before(start) {
			fmt.Fprintln(p.writer, FormatError("End date is before start date"))
			continue
		}
		return ledger.DateRange{Start: start, End: end}, true, nil
	}
}

func (p *Prompter) promptAmount(ctx context.Context) (decimal.Decimal, bool, error) {
	for {
		line, ok, err := p.promptLine(ctx, "Amount")
		if err != nil || !ok {
			return decimal.Decimal{}, false, err
		}
		amount, parseErr := decimal.NewFromString(line)
		if parseErr != nil {
			fmt.Fprintln(p.writer, FormatError("Not a number: "+line))
			continue
		}
		if amount.IsNegative() {
			fmt.Fprintln(p.writer, FormatError("Enter the amount as a positive magnitude"))
			continue
		}
		return amount, true, nil
	}
}

func (p *Prompter) promptDate(ctx context.Context, label string) (time.Time, bool, error) {
	for {
		line, ok, err := p.promptLine(ctx, label)
		if err != nil || !ok {
			return time.Time{}, false, err
		}
		date, parseErr := time.Parse(dateLayout, line)
		if parseErr != nil {
			fmt.Fprintln(p.writer, FormatError("Not a date: "+line))
			continue
		}
		return date, true, nil
	}
}

// promptChoice offers the configured names as a numbered list but also
// accepts free text, since unknown values are tolerated by the note format.
func (p *Prompter) promptChoice(ctx context.Context, label string, options []string) (string, bool, error) {
	for i, option := range options {
		fmt.Fprintln(p.writer, SubtleStyle.Render(fmt.Sprintf("  [%d] %s", i+1, option)))
	}

	line, ok, err := p.promptLine(ctx, label)
	if err != nil || !ok {
		return "", false, err
	}
	if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(options) {
		return options[n-1], true, nil
	}
	return line, true, nil
}

// promptLine reads one trimmed line. ok=false means the user cancelled with
// an empty line or EOF. The read itself happens in a goroutine so a
// cancelled context returns immediately even while the terminal blocks.
func (p *Prompter) promptLine(ctx context.Context, label string) (string, bool, error) {
	fmt.Fprint(p.writer, FormatPrompt(label))

	type result struct {
		err  error
		line string
	}
	ch := make(chan result, 1)
	go func() {
		line, err := p.reader.ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case res := <-ch:
		line := strings.TrimSpace(res.line)
		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				// A final unterminated line still counts as input.
				if line != "" {
					return line, true, nil
				}
				return "", false, nil
			}
			return "", false, fmt.Errorf("failed to read input: %w", res.err)
		}
		if line == "" {
			return "", false, nil
		}
		return line, true, nil
	}
}
