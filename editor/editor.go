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
package editor

import (
	"errors"
	"fmt"
	"io"

	rewind "github.com/mgrady/rewind/types"
)

// Ceilings on what a single script may do to the buffer. They guard
// against pathological inputs independent of buffer size.
const (
	MaxOperations = 1_000_000
	MaxDeleted    = 2 * MaxOperations
)

var (
	ErrTooManyOperations = errors.New("too many operations")
	ErrCountMismatch     = errors.New("operation count mismatch")
	ErrDeleteCeiling     = errors.New("deletion ceiling exceeded")
	ErrConsumed          = errors.New("editor already consumed")
)

// The Editor owns the character buffer and the stack of inverse
// operations that undo commands pop from.
type Editor struct {
	value    []rune             // the buffer being edited
	undo     []rewind.Operation // stack of operations to undo
	declared int                // operation count declared by the script header
	deleted  int                // characters deleted so far in the current Apply
	out      io.Writer          // sink for print operations
	consumed bool
}

// NewEditor makes an editor over an initial buffer value. The declared
// count is not validated until Apply runs.
func NewEditor(initial string, declared int, out io.Writer) *Editor {
	return &Editor{value: []rune(initial), declared: declared, out: out}
}

// Apply performs ops one at a time, in order, with no reordering.
// It fails up front if ops exceeds MaxOperations or does not match the
// declared count, and mid-run if the total characters deleted exceed
// MaxDeleted. On failure the buffer keeps whatever state it reached.
func (e *Editor) Apply(ops []rewind.Operation) error {
	if e.consumed {
		return ErrConsumed
	}
	if len(ops) > MaxOperations {
		return fmt.Errorf("%w: %d operations, ceiling is %d", ErrTooManyOperations, len(ops), MaxOperations)
	}
	if len(ops) != e.declared {
		return fmt.Errorf("%w: declared %d, supplied %d", ErrCountMismatch, e.declared, len(ops))
	}
	e.deleted = 0
	for _, op := range ops {
		if err := e.Perform(op); err != nil {
			return err
		}
	}
	return nil
}

// Perform applies a single operation and saves its inverse for undo.
func (e *Editor) Perform(op rewind.Operation) error {
	inverse, err := op.Perform(e)
	if err != nil {
		return err
	}
	if inverse != nil {
		e.undo = append(e.undo, inverse)
	}
	return nil
}

func (e *Editor) PerformUndo() {
	if len(e.undo) > 0 {
		last := len(e.undo) - 1
		undo := e.undo[last]
		e.undo = e.undo[0:last]
		undo.Perform(e)
	}
}

func (e *Editor) AppendRunes(runes []rune) {
	e.value = append(e.value, runes...)
}

// DeleteBack removes the last n characters, returning them in removal
// order (last character first). The caller has already checked n against
// the buffer length; the deletion ceiling is checked here.
func (e *Editor) DeleteBack(n int) ([]rune, error) {
	e.deleted += n
	if e.deleted > MaxDeleted {
		return nil, fmt.Errorf("%w: %d characters, ceiling is %d", ErrDeleteCeiling, e.deleted, MaxDeleted)
	}
	removed := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		last := len(e.value) - 1
		removed = append(removed, e.value[last])
		e.value = e.value[0:last]
	}
	return removed, nil
}

func (e *Editor) TruncateBack(n int) {
	if n > len(e.value) {
		n = len(e.value)
	}
	e.value = e.value[0 : len(e.value)-n]
}

// CharAt returns the character at 1-based position i of the current buffer.
func (e *Editor) CharAt(i int) (rune, bool) {
	if i < 1 || i > len(e.value) {
		return 0, false
	}
	return e.value[i-1], true
}

func (e *Editor) Length() int {
	return len(e.value)
}

func (e *Editor) Text() string {
	return string(e.value)
}

func (e *Editor) UndoDepth() int {
	return len(e.undo)
}

func (e *Editor) Print(c rune) {
	fmt.Fprintln(e.out, string(c))
}

// Output returns the final buffer value and consumes the editor.
// Further Apply or Output calls fail with ErrConsumed.
func (e *Editor) Output() (string, error) {
	if e.consumed {
		return "", ErrConsumed
	}
	e.consumed = true
	return string(e.value), nil
}
