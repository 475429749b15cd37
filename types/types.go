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
package types

// Command codes: the first character of a script line selects the operation.
const (
	CodeAppend rune = '1'
	CodeDelete rune = '2'
	CodePrint  rune = '3'
	CodeUndo   rune = '4'
)

// Commander modes
const (
	ModeCommand = 0
	ModeQuit    = 9999
)

// Event types
const (
	EventKey = iota
	EventResize
)

type Key int

const (
	KeyUnsupported Key = iota
	KeyEnter
	KeyEsc
	KeyBackspace2
	KeySpace
	KeyTab
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Size struct {
	Rows int
	Cols int
}

// An Operation mutates an Editor. Performing an operation returns the
// inverse operation that undoes it, or nil when there is nothing to undo.
type Operation interface {
	Perform(e Editor) (Operation, error)
}

type Editor interface {
	AppendRunes(runes []rune)
	DeleteBack(n int) ([]rune, error) // removal order: last character first
	TruncateBack(n int)
	CharAt(i int) (rune, bool) // 1-based
	Length() int
	Text() string
	UndoDepth() int

	Perform(op Operation) error
	PerformUndo()

	Print(c rune)
}

type Commander interface {
	GetMode() int
	GetPending() string
	GetMessage() string
}
