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
package operations

import (
	rewind "github.com/mgrady/rewind/types"
)

// Delete

type Delete struct {
	Count int
}

func (op *Delete) Perform(e rewind.Editor) (rewind.Operation, error) {
	if op.Count > e.Length() {
		// nothing to delete; not an error, and not undoable
		return nil, nil
	}
	removed, err := e.DeleteBack(op.Count)
	if err != nil {
		return nil, err
	}
	return &Restore{Runes: removed}, nil
}

// Restore is the inverse of a Delete. Runes holds the deleted characters
// in removal order (last character first); putting them back into buffer
// order is deferred to here, when an undo actually happens.
type Restore struct {
	Runes []rune
}

func (op *Restore) Perform(e rewind.Editor) (rewind.Operation, error) {
	restored := make([]rune, len(op.Runes))
	for i, c := range op.Runes {
		restored[len(op.Runes)-1-i] = c
	}
	e.AppendRunes(restored)
	return nil, nil
}
