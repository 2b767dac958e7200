// Package ledger persists transactions to a local transactions.csv.
// The amount column always carries the vault's opaque blob; plaintext
// amounts never touch the file.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/financeflow-dev/financeflow/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,encrypted_amount,note,date,type,card,source_id"

const (
	numFields  = 7
	dateFormat = time.RFC3339
	colID      = 0
	colAmount  = 1
	colNote    = 2
	colDate    = 3
	colType    = 4
	colCard    = 5
	colSource  = 6
)

// ReadTransactions reads all transactions from a transactions.csv
// reader. Amounts stay encrypted; see Service.ReadAll for decryption.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

// WriteTransactions writes transactions (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txns {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends rows without a header.
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, tx := range txns {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = tx.ID.String()
	row[colAmount] = tx.EncryptedAmount
	row[colNote] = tx.Note
	row[colDate] = tx.Date.Format(dateFormat)
	row[colType] = string(tx.Type)
	row[colCard] = tx.Card
	row[colSource] = tx.SourceID
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := uuid.Parse(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	return model.Transaction{
		ID:              id,
		EncryptedAmount: record[colAmount],
		Note:            record[colNote],
		Date:            date,
		Type:            model.TransactionType(record[colType]),
		Card:            record[colCard],
		SourceID:        record[colSource],
	}, nil
}
