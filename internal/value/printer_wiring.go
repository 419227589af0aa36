package value

import (
	"fmt"

	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
)

// schemePrinter adapts Write to schemeerr.Printer so SchemeError.Error()
// renders the offending value with its printed form instead
// of Go's %v.
type schemePrinter struct{}

func (schemePrinter) PrintValue(v any) string {
	if val, ok := v.(Value); ok {
		return Write(val)
	}
	return defaultFormat(v)
}

func defaultFormat(v any) string {
	return fmt.Sprintf("%v", v)
}

func init() {
	schemeerr.ActivePrinter = schemePrinter{}
}
