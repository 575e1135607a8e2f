package session

import "ledger/internal/core"

// Field identifies the form input that receives typing.
type Field int

const (
	FieldSource Field = iota
	FieldAmount
	FieldKind
	FieldTag
	FieldDate
)

var fieldLabels = [...]string{"Source", "Amount", "Type", "Tag", "Date"}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldLabels) {
		return "Unknown"
	}
	return fieldLabels[f]
}

// Next rotates Source→Amount→Kind→Tag→Date→Source.
func (f Field) Next() Field {
	if f >= FieldDate || f < FieldSource {
		return FieldSource
	}
	return f + 1
}

// IsText reports whether the field accepts typed characters.
func (f Field) IsText() bool {
	return f == FieldSource || f == FieldAmount || f == FieldDate
}

// Form is the scratch buffer for creating or editing one transaction.
type Form struct {
	Source   string
	Amount   string
	Kind     core.Kind
	TagIndex int
	Date     string
	Active   Field

	placeholder string
}

// NewForm returns a reset form whose date defaults to placeholder.
func NewForm(placeholder string) Form {
	f := Form{placeholder: placeholder}
	f.Reset()
	return f
}

// Reset restores every field to its default.
func (f *Form) Reset() {
	f.Source = ""
	f.Amount = ""
	f.Kind = core.Debit
	f.TagIndex = 0
	f.Date = f.placeholder
	f.Active = FieldSource
}

func (f *Form) activeText() *string {
	switch f.Active {
	case FieldSource:
		return &f.Source
	case FieldAmount:
		return &f.Amount
	case FieldDate:
		return &f.Date
	default:
		return nil
	}
}

// PushChar appends r to the active text field. Kind and Tag ignore typing.
func (f *Form) PushChar(r rune) {
	if p := f.activeText(); p != nil {
		*p += string(r)
	}
}

// PopChar drops the last character of the active text field.
func (f *Form) PopChar() {
	p := f.activeText()
	if p == nil || *p == "" {
		return
	}
	runes := []rune(*p)
	*p = string(runes[:len(runes)-1])
}

func (f *Form) ToggleKind() {
	f.Kind = f.Kind.Toggle()
}

func (f *Form) NextTag(n int) {
	f.TagIndex = core.NextIndex(f.TagIndex, n)
}

func (f *Form) PrevTag(n int) {
	f.TagIndex = core.PrevIndex(f.TagIndex, n)
}

func (f *Form) AdvanceField() {
	f.Active = f.Active.Next()
}

// LoadFrom fills the form from tx for editing. A tag missing from the
// catalog falls back to index 0.
func (f *Form) LoadFrom(tx core.Transaction, catalog core.TagCatalog) {
	f.Source = tx.Source
	f.Amount = core.FormatAmountInput(tx.Amount)
	f.Kind = tx.Kind
	f.Date = tx.Date
	f.Active = FieldSource
	f.TagIndex = 0
	if i, ok := catalog.IndexOf(tx.Tag); ok {
		f.TagIndex = i
	}
}

// Draft converts the form into a transaction without an ID. Amount text that
// does not parse commits as 0.
func (f Form) Draft(catalog core.TagCatalog) core.Transaction {
	return core.Transaction{
		Source: f.Source,
		Amount: core.AmountOrZero(f.Amount),
		Kind:   f.Kind,
		Tag:    catalog.Resolve(f.TagIndex),
		Date:   f.Date,
	}
}
