// Package ofx converts OFX/QFX bank exports into ledger transactions so a
// statement can be bulk-imported as notes.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/shopspring/decimal"
)

// amountPrecision is the decimal precision kept when converting OFX rational
// amounts; two digits covers every currency statement we have seen.
const amountPrecision = 2

// Parser reads OFX/QFX statements.
type Parser struct {
	// CategoryHints maps OFX transaction types to configured category
	// names. Unmapped types fall back to DefaultCategory.
	CategoryHints   map[string]string
	DefaultCategory string
}

// NewParser creates a parser with the stock category hints.
func NewParser() *Parser {
	return &Parser{
		CategoryHints: map[string]string{
			"INT": "Interest",
			"FEE": "Bank Fees",
			"ATM": "Cash",
		},
		DefaultCategory: "Uncategorized",
	}
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes the SGML quirks banks ship: mixed-case severities and
// opening tags missing their closing bracket.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseStatement parses an OFX/QFX document into ledger transactions.
// Expense/income is derived from the amount sign; the account field is set
// to the given configured account name.
func (p *Parser) ParseStatement(ctx context.Context, reader io.Reader, account string) ([]model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX document: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX document: %w", err)
	}

	var txs []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		bankStmts++
		for _, ofxTx := range stmt.BankTranList.Transactions {
			txs = append(txs, p.convert(ofxTx, account))
		}
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		ccStmts++
		for _, ofxTx := range stmt.BankTranList.Transactions {
			txs = append(txs, p.convert(ofxTx, account))
		}
	}

	slog.Info("Parsed OFX statement",
		"transactions", len(txs),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return txs, nil
}

// convert maps one OFX transaction to the ledger model. OFX uses negative
// amounts for debits, which become expenses; credits become income.
func (p *Parser) convert(ofxTx ofxgo.Transaction, account string) model.Transaction {
	amount := decimal.NewFromBigRat(&ofxTx.TrnAmt.Rat, amountPrecision)

	kind := model.KindIncome
	if amount.IsNegative() {
		kind = model.KindExpense
	}

	return model.Transaction{
		Kind:        kind,
		Amount:      amount.Abs(),
		Description: describe(ofxTx),
		Account:     account,
		Category:    p.category(ofxTx),
		OccurredAt:  ofxTx.DtPosted.Time,
	}
}

func (p *Parser) category(ofxTx ofxgo.Transaction) string {
	if hint, ok := p.CategoryHints[fmt.Sprintf("%v", ofxTx.TrnType)]; ok {
		return hint
	}
	return p.DefaultCategory
}

// statementPrefixes are bank-added noise stripped from descriptions.
var statementPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
}

// describe extracts a single-line description, preferring the payee name.
func describe(ofxTx ofxgo.Transaction) string {
	name := string(ofxTx.Name)
	if ofxTx.Payee != nil && ofxTx.Payee.Name != "" {
		name = string(ofxTx.Payee.Name)
	} else if ofxTx.Memo != "" && name == "" {
		name = string(ofxTx.Memo)
	}

	name = strings.TrimSpace(name)
	for _, prefix := range statementPrefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// The note body is one field per line.
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", "")
	if name == "" {
		name = "Imported transaction"
	}
	return name
}
