package trace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirkamil/cs61a-scheme-editor/internal/trace"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func TestNoOpDiscardsEverything(t *testing.T) {
	var h trace.Hooks = trace.NoOp{}
	h.OnEnter(value.NewInt(1), nil)
	h.OnComplete(value.NewInt(1), value.NewInt(2))
	h.OnApply(nil, nil)
	h.RawOut("ignored")
	h.Out(value.NewInt(1))
}

func TestStdoutWritesToGivenWriter(t *testing.T) {
	var sb strings.Builder
	h := trace.NewStdout(&sb)
	h.RawOut("hello ")
	h.Out(value.NewInt(42))
	assert.Equal(t, "hello 42", sb.String())
}

func TestRecordingBuffersEveryHook(t *testing.T) {
	rec := &trace.Recording{}
	var h trace.Hooks = rec

	expr := value.NewInt(1)
	h.OnEnter(expr, nil)
	h.OnComplete(expr, value.NewInt(2))
	h.RawOut("raw")
	h.Out(value.NewInt(3))

	assert.Equal(t, []value.Value{expr}, rec.Entered)
	assert.Equal(t, []value.Value{value.NewInt(2)}, rec.Completed)
	assert.Equal(t, []string{"raw"}, rec.RawLines)
	assert.Equal(t, []value.Value{value.NewInt(3)}, rec.Written)
}
