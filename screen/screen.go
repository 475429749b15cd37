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
package screen

import (
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	rewind "github.com/mgrady/rewind/types"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size rewind.Size
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e rewind.Editor, c rewind.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize rewind.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	s.RenderBuffer(e)
	s.RenderInfoBar(e)
	s.RenderMessageBar(c)
	termbox.SetCursor(len("> "+c.GetPending()), s.size.Rows-1)
	termbox.Flush()
}

// RenderBuffer draws the buffer contents, wrapped to the screen width.
func (s *Screen) RenderBuffer(e rewind.Editor) {
	row, col := 0, 0
	for _, ch := range e.Text() {
		w := runewidth.RuneWidth(ch)
		if col+w > s.size.Cols {
			row, col = row+1, 0
		}
		if row >= s.size.Rows-2 {
			break
		}
		termbox.SetCell(col, row, ch, termbox.ColorWhite, termbox.ColorBlack)
		col += w
	}
}

func (s *Screen) RenderInfoBar(e rewind.Editor) {
	finalText := fmt.Sprintf(" %d chars, %d undoable ", e.Length(), e.UndoDepth())
	text := " the rewind editor "
	for len(text) < s.size.Cols-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, rune(ch), termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) RenderMessageBar(c rewind.Commander) {
	line := "> " + c.GetPending()
	if c.GetMessage() != "" {
		line += "  [" + c.GetMessage() + "]"
	}
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, rune(ch), termbox.ColorWhite, termbox.ColorBlack)
	}
}

func (s *Screen) GetNextEvent() *rewind.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &rewind.Event{
		Type: eventType(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func eventType(t termbox.EventType) int {
	switch t {
	case termbox.EventResize:
		return rewind.EventResize
	default:
		return rewind.EventKey
	}
}

func key(k termbox.Key) rewind.Key {
	switch k {
	case termbox.KeyEnter:
		return rewind.KeyEnter
	case termbox.KeyEsc:
		return rewind.KeyEsc
	case termbox.KeyBackspace:
		return rewind.KeyBackspace2
	case termbox.KeyBackspace2:
		return rewind.KeyBackspace2
	case termbox.KeySpace:
		return rewind.KeySpace
	case termbox.KeyTab:
		return rewind.KeyTab
	default:
		return rewind.KeyUnsupported
	}
}
