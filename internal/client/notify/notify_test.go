package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carrental/internal/logging"
)

type recorder struct {
	kinds    []Kind
	messages []string
}

func (r *recorder) Notify(kind Kind, message string) {
	r.kinds = append(r.kinds, kind)
	r.messages = append(r.messages, message)
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	n.Notify(Success, "Welcome back, Jo!")
	n.Notify(Info, "You have been logged out due to inactivity")

	assert.Equal(t, "[success] Welcome back, Jo!\n[info] You have been logged out due to inactivity\n", buf.String())
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logging.NewTextLogger(&buf, "debug"))

	n.Notify(Error, "Invalid email or password")
	n.Notify(Success, "ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=WARN")
	assert.Contains(t, lines[0], "kind=error")
	assert.Contains(t, lines[0], "component=notify")
	assert.Contains(t, lines[1], "level=DEBUG")
	assert.Contains(t, lines[1], "kind=success")
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Multi{a, b}.Notify(Info, "hello")

	assert.Equal(t, []string{"hello"}, a.messages)
	assert.Equal(t, []Kind{Info}, b.kinds)
}
