package importer

import (
	"io"

	"github.com/MrJamesThe3rd/wealthboard/internal/importer/sheet"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

// SheetParser turns a monthly budget sheet into transaction params.
type SheetParser interface {
	Parse(r io.Reader) (*sheet.Result, error)
}

// SheetImport is the outcome of importing a sheet. When Result holds
// conflicts nothing was written and the caller resubmits through Confirm.
type SheetImport struct {
	Result   *transaction.ImportResult
	Unmapped []string
	Skipped  int
	Charset  string
}
