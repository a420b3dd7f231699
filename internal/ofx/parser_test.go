package ofx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>POS PURCHASE STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120090000[0:GMT]
<TRNAMT>1250.00
<FITID>2024012001
<NAME>PAYROLL ACME CORP
</STMTTRN>
<STMTTRN>
<TRNTYPE>FEE
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>-5.00
<FITID>2024012501
<NAME>MONTHLY SERVICE FEE
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseStatement(t *testing.T) {
	p := NewParser()

	txs, err := p.ParseStatement(context.Background(), strings.NewReader(sampleBankOFX), "Checking")
	require.NoError(t, err)
	require.Len(t, txs, 3)

	coffee := txs[0]
	assert.Equal(t, model.KindExpense, coffee.Kind, "debits become expenses")
	assert.True(t, coffee.Amount.Equal(decimal.RequireFromString("25.50")), "amount is stored as magnitude, got %s", coffee.Amount)
	assert.Equal(t, "STARBUCKS STORE #1234", coffee.Description, "bank noise prefix is stripped")
	assert.Equal(t, "Checking", coffee.Account)
	assert.Equal(t, "Uncategorized", coffee.Category)
	assert.Equal(t, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), coffee.OccurredAt.UTC())

	payroll := txs[1]
	assert.Equal(t, model.KindIncome, payroll.Kind, "credits become income")
	assert.True(t, payroll.Amount.Equal(decimal.RequireFromString("1250")))

	fee := txs[2]
	assert.Equal(t, model.KindExpense, fee.Kind)
	assert.Equal(t, "Bank Fees", fee.Category, "known transaction types map to category hints")
}

func TestParseStatementTransactionsValidate(t *testing.T) {
	p := NewParser()

	txs, err := p.ParseStatement(context.Background(), strings.NewReader(sampleBankOFX), "Checking")
	require.NoError(t, err)

	for _, tx := range txs {
		assert.NoError(t, tx.Validate())
	}
}

func TestParseStatementFixesSGMLQuirks(t *testing.T) {
	// Mixed-case severity values show up in real bank exports.
	quirky := strings.Replace(sampleBankOFX, "<SEVERITY>INFO", "<SEVERITY>Info</SEVERITY>", 2)

	p := NewParser()
	txs, err := p.ParseStatement(context.Background(), strings.NewReader(quirky), "Checking")
	require.NoError(t, err)
	assert.Len(t, txs, 3)
}

func TestParseStatementRejectsGarbage(t *testing.T) {
	p := NewParser()

	_, err := p.ParseStatement(context.Background(), strings.NewReader("not an ofx file"), "Checking")
	assert.Error(t, err)
}

func TestParseStatementHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewParser()
	_, err := p.ParseStatement(ctx, strings.NewReader(sampleBankOFX), "Checking")
	assert.ErrorIs(t, err, context.Canceled)
}
