package minioexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"orderflow/internal/core/domain/model/order"
)

// highValueNoteAmount is the exclusive amount threshold above which a row
// gets the high-value note.
var highValueNoteAmount = decimal.NewFromInt(150)

const highValueNote = "High value order"

// MarshalOrdersCSV renders the export rows for a batch of orders. Rows carry
// the exported status: the file documents the state the batch reaches when
// the export is durably written.
func MarshalOrdersCSV(orders []*order.Order) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Type", "Amount", "Flag", "Status", "Priority", "Notes"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, o := range orders {
		notes := ""
		if o.Amount().GreaterThan(highValueNoteAmount) {
			notes = highValueNote
		}

		row := []string{
			strconv.FormatInt(o.ID(), 10),
			o.Type().String(),
			o.Amount().String(),
			strconv.FormatBool(o.Flag()),
			order.StatusExported.String(),
			o.Priority().String(),
			notes,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("writing csv row for order %d: %w", o.ID(), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}
