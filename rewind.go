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
package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/mgrady/rewind/commander"
	"github.com/mgrady/rewind/editor"
	"github.com/mgrady/rewind/screen"
)

func main() {

	var script string
	interactive := false

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				os.Exit(1)
			}
		case "-i":
			interactive = true
		default:
			log.Printf("unknown option: %s", argi)
			os.Exit(1)
		}
	}

	switch {
	case script != "":
		runScript(script)
	case interactive:
		runInteractive()
	default:
		runBatch()
	}
}

// runBatch interprets a script read in full from stdin: a declared
// operation count on the first line, then one operation per line.
// Print output goes to stdout as operations run, followed by the
// final buffer.
func runBatch() {
	input, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		log.Printf("%+v", err)
		os.Exit(1)
	}

	declared, ops, err := commander.ParseScript(string(input))
	if err != nil {
		log.Printf("%+v", err)
		os.Exit(1)
	}

	e := editor.NewEditor("", declared, os.Stdout)
	if err := e.Apply(commander.Valid(ops)); err != nil {
		log.Printf("%+v", err)
		os.Exit(1)
	}
	output, err := e.Output()
	if err != nil {
		log.Printf("%+v", err)
		os.Exit(1)
	}
	fmt.Println(output)
}

// runScript evaluates a lisp program against a fresh editor and prints
// the resulting buffer.
func runScript(path string) {
	e := editor.NewEditor("", 0, os.Stdout)
	commander.BindLispEditor(e)
	if message := commander.ParseEvalFile(path); message != "" {
		log.Printf("%s", message)
	}
	fmt.Println(e.Text())
}

// runInteractive runs a termbox loop: type operation lines (or lisp
// forms) and watch the buffer change.
func runInteractive() {
	var printed bytes.Buffer
	e := editor.NewEditor("", 0, &printed)
	c := commander.NewCommander(e, &printed)

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		os.Exit(1)
	}
	defer s.Close()

	// Open a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.rewindlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
