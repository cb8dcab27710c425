// Package ofx converts OFX/QFX bank exports into budgena transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"budgena/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocess fixes common formatting issues in OFX files before handing the
// content to ofxgo.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX export and returns the contained transactions
// mapped into the budgena model: debits become expenses, credits become
// income, amounts are stored as positive magnitudes and the category is left
// to the catch-all since OFX carries no category information.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			currency := strings.ToUpper(stmt.CurDef.String())
			for _, ofxTx := range stmt.BankTranList.Transactions {
				if txn, ok := p.convert(ofxTx, currency); ok {
					transactions = append(transactions, txn)
				}
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			currency := strings.ToUpper(stmt.CurDef.String())
			for _, ofxTx := range stmt.BankTranList.Transactions {
				if txn, ok := p.convert(ofxTx, currency); ok {
					transactions = append(transactions, txn)
				}
			}
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// convert maps one OFX transaction into the budgena model. Zero-amount
// records are dropped: the store only accepts positive magnitudes.
func (p *Parser) convert(ofxTx ofxgo.Transaction, currency string) (model.Transaction, bool) {
	// OFX uses signed amounts: negative for debits.
	amount, _ := ofxTx.TrnAmt.Float64()

	txType := model.TypeIncome
	if amount < 0 {
		txType = model.TypeExpense
		amount = -amount
	}
	if amount == 0 {
		return model.Transaction{}, false
	}

	if currency == "" {
		currency = "USD"
	}

	return model.Transaction{
		ID:       string(ofxTx.FiTID),
		Amount:   amount,
		Category: model.CategoryOther,
		Type:     txType,
		Date:     ofxTx.DtPosted.Time,
		Notes:    p.describe(ofxTx),
		Currency: currency,
	}, true
}

// describe extracts the most useful description from OFX payee/name/memo.
func (p *Parser) describe(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && isGenericDescription(name) {
		name = strings.TrimSpace(string(tx.Memo))
	}
	return name
}

// isGenericDescription checks if a transaction name is too generic to keep.
func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}
