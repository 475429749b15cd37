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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgrady/rewind/operations"
	rewind "github.com/mgrady/rewind/types"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		line string
		want rewind.Operation
	}{
		{"1 abc", &operations.Append{Text: "abc"}},
		{"1  abc", &operations.Append{Text: " abc"}},
		{"1  ", &operations.Append{Text: " "}},
		{"1 abc def ghi", &operations.Append{Text: "abc def ghi"}},
		{"1      xy", &operations.Append{Text: "     xy"}},
		{"1", &operations.Append{Text: ""}},
		{"3 3", &operations.Print{Index: 3}},
		{"3          3", &operations.Print{Index: 3}},
		{"2 3", &operations.Delete{Count: 3}},
		{"2      3", &operations.Delete{Count: 3}},
		{"   2 3", &operations.Delete{Count: 3}},
		{"4", &operations.Undo{}},
		{"4 anything after the code is ignored", &operations.Undo{}},
		{"5", &operations.Invalid{}},
		{"", &operations.Invalid{}},
		{" ", &operations.Invalid{}},
		{"    ", &operations.Invalid{}},
		{"2", &operations.Invalid{}},
		{"2 x", &operations.Invalid{}},
		{"3 -1", &operations.Invalid{}},
		{"delete everything", &operations.Invalid{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseOperation(tt.line), "line %q", tt.line)
	}
}

// the same line always yields the same operation
func TestParseOperationDeterministic(t *testing.T) {
	for _, line := range []string{"1 abc", "2 3", "3 1", "4", "bogus"} {
		assert.Equal(t, ParseOperation(line), ParseOperation(line))
	}
}

func TestParseScript(t *testing.T) {
	input := "8\n    1 abc\n    3 3\n    2 3\n    1 xy\n    3 2\n    4 \n    4 \n    3 1"
	declared, ops, err := ParseScript(input)
	assert.NoError(t, err)
	assert.Equal(t, 8, declared)
	assert.Equal(t, []rewind.Operation{
		&operations.Append{Text: "abc"},
		&operations.Print{Index: 3},
		&operations.Delete{Count: 3},
		&operations.Append{Text: "xy"},
		&operations.Print{Index: 2},
		&operations.Undo{},
		&operations.Undo{},
		&operations.Print{Index: 1},
	}, ops)
}

func TestParseScriptBadHeader(t *testing.T) {
	for _, input := range []string{"", "x\n1 abc", " 4\n1 abc", "-1\n4"} {
		_, _, err := ParseScript(input)
		assert.ErrorIs(t, err, ErrBadHeader, "input %q", input)
	}
}

// invalid lines are kept in the parsed sequence; the caller decides
// whether to filter them
func TestParseScriptKeepsInvalid(t *testing.T) {
	_, ops, err := ParseScript("3\n1 abc\nbogus\n4\n")
	assert.NoError(t, err)
	assert.Len(t, ops, 3)
	assert.IsType(t, &operations.Invalid{}, ops[1])

	assert.Equal(t, []rewind.Operation{&operations.Append{Text: "abc"}, &operations.Undo{}}, Valid(ops))
}

func TestParseScriptWindowsLineEndings(t *testing.T) {
	declared, ops, err := ParseScript("2\r\n1 abc\r\n2 1\r\n")
	assert.NoError(t, err)
	assert.Equal(t, 2, declared)
	assert.Equal(t, []rewind.Operation{
		&operations.Append{Text: "abc"},
		&operations.Delete{Count: 1},
	}, ops)
}
