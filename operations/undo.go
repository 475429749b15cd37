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

// Undo

type Undo struct {
}

func (op *Undo) Perform(e rewind.Editor) (rewind.Operation, error) {
	e.PerformUndo()
	return nil, nil
}

// Invalid is the catch-all for lines that fit no command. It is never
// applied to the buffer and has no history effect.
type Invalid struct {
}

func (op *Invalid) Perform(e rewind.Editor) (rewind.Operation, error) {
	return nil, nil
}
