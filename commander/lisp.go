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
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/steelseries/golisp"

	"github.com/mgrady/rewind/operations"
	rewind "github.com/mgrady/rewind/types"
)

// The editor driven by the lisp primitives. golisp registers primitives
// globally, so there is one bound editor at a time.
var lispEditor rewind.Editor

func BindLispEditor(e rewind.Editor) {
	lispEditor = e
}

func init() {
	golisp.MakePrimitiveFunction("append-text", "1", AppendTextImpl)
	golisp.MakePrimitiveFunction("delete-back", "1", DeleteBackImpl)
	golisp.MakePrimitiveFunction("print-at", "1", PrintAtImpl)
	golisp.MakePrimitiveFunction("undo", "0", UndoImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", BufferTextImpl)
}

func AppendTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("append-text requires a string argument")
	}
	return performLisp(&operations.Append{Text: golisp.StringValue(val)})
}

func DeleteBackImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := countArg(args, "delete-back")
	if err != nil {
		return nil, err
	}
	return performLisp(&operations.Delete{Count: n})
}

func PrintAtImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	i, err := countArg(args, "print-at")
	if err != nil {
		return nil, err
	}
	return performLisp(&operations.Print{Index: i})
}

func UndoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return performLisp(&operations.Undo{})
}

func BufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if lispEditor == nil {
		return nil, errors.New("no editor is bound")
	}
	return golisp.StringWithValue(lispEditor.Text()), nil
}

func countArg(args *golisp.Data, name string) (int, error) {
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	n := int(golisp.IntegerValue(val))
	if n < 0 {
		return 0, fmt.Errorf("%s requires a non-negative integer", name)
	}
	return n, nil
}

// performLisp applies an operation to the bound editor and returns the
// resulting buffer text to the lisp caller.
func performLisp(op rewind.Operation) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor is bound")
	}
	if err := lispEditor.Perform(op); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(lispEditor.Text()), nil
}

func ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return golisp.String(value)
}

func ParseEvalFile(path string) string {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	value, err := golisp.ParseAndEvalAll(string(b))
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return golisp.String(value)
}
