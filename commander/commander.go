//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mgrady/rewind/operations"
	rewind "github.com/mgrady/rewind/types"
)

var ErrBadHeader = errors.New("script header is not a non-negative integer")

// ParseOperation converts one script line into an operation. It is total:
// a line that fits no command becomes Invalid.
func ParseOperation(line string) rewind.Operation {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if line == "" {
		return &operations.Invalid{}
	}
	code, size := utf8.DecodeRuneInString(line)
	rest := line[size:]
	switch code {
	case rewind.CodeAppend:
		return &operations.Append{Text: removeSeparator(rest)}
	case rewind.CodeDelete, rewind.CodePrint:
		return parseCount(code, removeSeparator(rest))
	case rewind.CodeUndo:
		return &operations.Undo{}
	default:
		return &operations.Invalid{}
	}
}

// removeSeparator drops the single character that conventionally separates
// the command code from its argument. Any further leading whitespace
// belongs to the argument.
func removeSeparator(rest string) string {
	if _, size := utf8.DecodeRuneInString(rest); size > 0 {
		return rest[size:]
	}
	return rest
}

func parseCount(code rune, rest string) rewind.Operation {
	n, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 63)
	if err != nil {
		return &operations.Invalid{}
	}
	if code == rewind.CodeDelete {
		return &operations.Delete{Count: int(n)}
	}
	return &operations.Print{Index: int(n)}
}

// ParseScript parses a full script: a declared operation count on the
// first line, then one operation per line. Invalid operations are kept
// in order so the caller can filter them or apply them as no-ops.
func ParseScript(input string) (int, []rewind.Operation, error) {
	lines := strings.Split(strings.TrimSuffix(input, "\n"), "\n")
	header := strings.TrimSuffix(lines[0], "\r")
	declared, err := strconv.ParseUint(header, 10, 63)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %q", ErrBadHeader, header)
	}
	ops := make([]rewind.Operation, 0, len(lines)-1)
	for _, line := range lines[1:] {
		ops = append(ops, ParseOperation(strings.TrimSuffix(line, "\r")))
	}
	return int(declared), ops, nil
}

// Valid filters out Invalid operations, preserving order. Invalid
// operations are never run; the batch pipeline drops them before the
// editor checks the declared count.
func Valid(ops []rewind.Operation) []rewind.Operation {
	valid := make([]rewind.Operation, 0, len(ops))
	for _, op := range ops {
		if _, ok := op.(*operations.Invalid); !ok {
			valid = append(valid, op)
		}
	}
	return valid
}

// The Commander converts typed input into operations for the Editor.
type Commander struct {
	editor  rewind.Editor
	printed *bytes.Buffer // print output captured for the message bar
	mode    int
	pending string // operation line as it is being typed
	message string // status message
}

func NewCommander(e rewind.Editor, printed *bytes.Buffer) *Commander {
	BindLispEditor(e)
	return &Commander{editor: e, printed: printed, mode: rewind.ModeCommand}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) GetPending() string {
	return c.pending
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) IsRunning() bool {
	return c.mode != rewind.ModeQuit
}

func (c *Commander) ProcessEvent(event *rewind.Event) error {
	switch event.Type {
	case rewind.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *rewind.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case rewind.KeyEsc:
			c.mode = rewind.ModeQuit
		case rewind.KeyEnter:
			c.PerformPending()
		case rewind.KeyBackspace2:
			if len(c.pending) > 0 {
				c.pending = c.pending[0 : len(c.pending)-1]
			}
		case rewind.KeySpace:
			c.pending += " "
		case rewind.KeyTab:
			c.pending += "\t"
		}
	}
	if ch != 0 {
		c.pending = c.pending + string(ch)
	}
	return nil
}

// PerformPending runs the line being typed: "q" quits, "(...)" goes to
// the lisp interpreter, anything else is parsed as a script operation
// and applied to the editor.
func (c *Commander) PerformPending() {
	line := c.pending
	c.pending = ""
	trimmed := strings.TrimSpace(line)
	if trimmed == "q" {
		c.mode = rewind.ModeQuit
		return
	}
	if strings.HasPrefix(trimmed, "(") {
		c.message = ParseEval(trimmed)
		return
	}
	op := ParseOperation(line)
	if _, ok := op.(*operations.Invalid); ok {
		c.message = fmt.Sprintf("invalid: %q", line)
		return
	}
	if err := c.editor.Perform(op); err != nil {
		c.message = err.Error()
		return
	}
	c.message = ""
	if c.printed != nil && c.printed.Len() > 0 {
		c.message = "printed " + strings.Join(strings.Fields(c.printed.String()), " ")
		c.printed.Reset()
	}
}
