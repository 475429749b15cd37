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

// Append

type Append struct {
	Text string
}

func (op *Append) Perform(e rewind.Editor) (rewind.Operation, error) {
	runes := []rune(op.Text)
	e.AppendRunes(runes)
	return &Truncate{Count: len(runes)}, nil
}

// Truncate is the inverse of an Append: performing it removes the
// appended characters from the end of the buffer.
type Truncate struct {
	Count int
}

func (op *Truncate) Perform(e rewind.Editor) (rewind.Operation, error) {
	e.TruncateBack(op.Count)
	return nil, nil
}
