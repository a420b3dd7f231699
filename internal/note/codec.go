// Package note implements the on-disk text format for ledger entries: the
// five-line transaction body and the timestamped note filenames.
package note

import (
	"fmt"
	"strings"

	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/shopspring/decimal"
)

// Marker lines of the transaction body. A note is only treated as a ledger
// entry when all of them are present.
const (
	headerPrefix      = "## "
	amountMarker      = "- Amount:"
	descriptionMarker = "- Description:"
	accountMarker     = "- Account:"
	categoryMarker    = "- Category:"
)

// Encode renders a transaction as its five-line note body. Expense amounts
// are written with a leading minus; income amounts are written unsigned.
func Encode(tx model.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n\n", headerPrefix, tx.Kind.Title())
	fmt.Fprintf(&b, "%s %s\n", amountMarker, tx.SignedAmount().String())
	fmt.Fprintf(&b, "%s %s\n", descriptionMarker, tx.Description)
	fmt.Fprintf(&b, "%s %s\n", accountMarker, tx.Account)
	fmt.Fprintf(&b, "%s %s\n", categoryMarker, tx.Category)
	return b.String()
}

// Decode parses a note body back into a transaction. Decoding is
// all-or-nothing: if any of the five marker lines is missing, or the amount
// is not numeric, it reports false so callers can skip foreign notes without
// treating them as errors. The returned amount is the unsigned magnitude;
// the sign convention is carried by Kind.
func Decode(text string) (model.Transaction, bool) {
	var (
		tx         model.Transaction
		haveHeader bool
		haveAmount bool
		haveDesc   bool
		haveAcct   bool
		haveCat    bool
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case !haveHeader && strings.HasPrefix(line, headerPrefix):
			kind, err := model.ParseKind(strings.TrimPrefix(line, headerPrefix))
			if err != nil {
				return model.Transaction{}, false
			}
			tx.Kind = kind
			haveHeader = true
		case !haveAmount && strings.HasPrefix(line, amountMarker):
			raw := strings.TrimSpace(strings.TrimPrefix(line, amountMarker))
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return model.Transaction{}, false
			}
			tx.Amount = amount.Abs()
			haveAmount = true
		case !haveDesc && strings.HasPrefix(line, descriptionMarker):
			tx.Description = strings.TrimSpace(strings.TrimPrefix(line, descriptionMarker))
			haveDesc = true
		case !haveAcct && strings.HasPrefix(line, accountMarker):
			tx.Account = strings.TrimSpace(strings.TrimPrefix(line, accountMarker))
			haveAcct = true
		case !haveCat && strings.HasPrefix(line, categoryMarker):
			tx.Category = strings.TrimSpace(strings.TrimPrefix(line, categoryMarker))
			haveCat = true
		}
	}

	if !haveHeader || !haveAmount || !haveDesc || !haveAcct || !haveCat {
		return model.Transaction{}, false
	}
	return tx, true
}
