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

// Print

// Print emits the character at a 1-based index of the current buffer,
// one line per print. Out-of-range indexes print nothing.
type Print struct {
	Index int
}

func (op *Print) Perform(e rewind.Editor) (rewind.Operation, error) {
	if c, ok := e.CharAt(op.Index); ok {
		e.Print(c)
	}
	return nil, nil
}
