package transaction

import (
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DisplayDateLayout renders as DD/MM/YYYY HH:MM.
const DisplayDateLayout = "02/01/2006 15:04"

// Layouts without a zone are read in the display location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

const dateOnlyLayout = "2006-01-02"

// Display is a transaction ready to be shown in the history list.
// An invalid Amount or NewBalance marks a value the service sent in a form
// that is not a number.
type Display struct {
	ID         string
	Amount     decimal.NullDecimal
	NewBalance decimal.NullDecimal
	Date       string
	Kind       Kind
	Liters     decimal.NullDecimal
}

// MapResult is the mapped batch along with how many records carried a
// field that could not be parsed.
type MapResult struct {
	Transactions []Display
	Malformed    int
}

type Mapper struct {
	location *time.Location
	log      logrus.FieldLogger
}

// NewMapper returns a Mapper that formats dates in location. A nil location
// means the process local time zone.
func NewMapper(location *time.Location, log logrus.FieldLogger) *Mapper {
	if location == nil {
		location = time.Local
	}
	return &Mapper{location: location, log: log}
}

// Map converts records in order. It never fails the batch: unparsable fields
// are carried as invalid values and counted in MapResult.Malformed.
func (m *Mapper) Map(records []Record) MapResult {
	result := MapResult{Transactions: make([]Display, 0, len(records))}
	for _, record := range records {
		display, ok := m.MapRecord(record)
		if !ok {
			result.Malformed++
			m.log.WithFields(logrus.Fields{
				"transactionID":   record.TransactionID.String(),
				"transactionType": record.TransactionType,
			}).Warn("Mapper.Map.malformed record")
			m.log.WithField("record", spew.Sdump(record)).Debug("Mapper.Map.malformed record dump")
		}
		result.Transactions = append(result.Transactions, display)
	}
	return result
}

// MapRecord converts one record. ok is false if amount, new balance or date
// could not be parsed.
func (m *Mapper) MapRecord(record Record) (display Display, ok bool) {
	kind := KindOf(record.TransactionType)
	display = Display{
		ID:         record.TransactionID.String(),
		Amount:     signedAmount(parseDecimal(record.Amount.String()), kind),
		NewBalance: parseDecimal(record.NewBalance.String()),
		Kind:       kind,
	}
	if record.Liters != nil {
		display.Liters = parseDecimal(record.Liters.String())
	}

	dateOK := false
	if date, err := m.parseDate(record.TransactionDate); err == nil {
		display.Date = date.In(m.location).Format(DisplayDateLayout)
		dateOK = true
	}

	return display, display.Amount.Valid && display.NewBalance.Valid && dateOK
}

func (m *Mapper) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	date, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return date, nil
	}
	for _, layout := range localLayouts {
		if date, localErr := time.ParseInLocation(layout, value, m.location); localErr == nil {
			return date, nil
		}
	}
	if date, dateErr := time.Parse(dateOnlyLayout, value); dateErr == nil {
		return date, nil
	}
	return time.Time{}, err
}

// signedAmount makes purchases negative and everything else positive so the
// sign always agrees with the kind.
func signedAmount(amount decimal.NullDecimal, kind Kind) decimal.NullDecimal {
	if !amount.Valid {
		return amount
	}
	switch kind {
	case KindPurchased:
		amount.Decimal = amount.Decimal.Abs().Neg()
	case KindAdded, KindSet:
		amount.Decimal = amount.Decimal.Abs()
	}
	return amount
}

func parseDecimal(value string) decimal.NullDecimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.NullDecimal{}
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(parsed)
}
