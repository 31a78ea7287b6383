package engine

import (
	"strings"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

// extractMeta pulls header-level quote fields out of a small sheet.
// Each field resolves its best column once, then takes the first
// non-empty cell in row order. Later sheets overwrite earlier values,
// so the last contributing sheet wins per field.
func extractMeta(s *model.Sheet, meta *model.Meta) {
	columns := s.ColumnNames()
	for _, fs := range MetaSynonyms {
		col, ok := BestColumn(columns, fs.Phrases)
		if !ok {
			continue
		}
		for _, row := range s.Rows {
			value := strings.TrimSpace(row.Cell(col))
			if value == "" {
				continue
			}
			setMetaField(meta, fs.Field, value)
			break
		}
	}
}

func setMetaField(meta *model.Meta, field, value string) {
	switch field {
	case FieldBidName:
		meta.BidName = value
	case FieldCustomer:
		meta.Customer = value
	case FieldValidFrom:
		meta.ValidFrom = value
	case FieldValidTo:
		meta.ValidTo = value
	case FieldContactName:
		meta.ContactName = value
	case FieldContactEmail:
		meta.ContactEmail = value
	case FieldCurrency:
		meta.Currency = value
	}
}
