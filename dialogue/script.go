// Package dialogue loads paragraph scripts for NPCs, environment points and
// cutscenes, and tracks a reader's position in one.
package dialogue

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"path"
	"strings"
)

//go:embed scripts/*.txt
var scriptsFS embed.FS

// Line is one paragraph shown as a unit.
type Line struct {
	Speaker string
	Text    string
	// Grant names a weapon handed to the player when this line is shown.
	Grant string
}

type Script struct {
	Name  string
	Lines []Line
}

// Len is the number of paragraphs.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Lines)
}

// Load reads an embedded script by name, without extension.
func Load(name string) (*Script, error) {
	data, err := scriptsFS.Open(path.Join("scripts", name+".txt"))
	if err != nil {
		return nil, fmt.Errorf("dialogue: load %s: %w", name, err)
	}
	defer data.Close()
	return Parse(name, data)
}

// MustLoad is Load for scripts compiled into the binary.
func MustLoad(name string) *Script {
	s, err := Load(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse reads the script format:
//
//	# comment
//	Speaker:          sets the speaker for following paragraphs
//	[Weapon: name]    grants name with the next paragraph
//	[anything else]   shown as its own paragraph
//
// Paragraphs are separated by blank lines; wrapped lines are joined with a
// space.
func Parse(name string, r io.Reader) (*Script, error) {
	s := &Script{Name: name}
	var (
		speaker string
		grant   string
		para    []string
	)
	flush := func() {
		if len(para) == 0 {
			return
		}
		s.Lines = append(s.Lines, Line{Speaker: speaker, Text: strings.Join(para, " "), Grant: grant})
		para = para[:0]
		grant = ""
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			flush()
			body := strings.TrimSpace(line[1 : len(line)-1])
			if weapon, ok := strings.CutPrefix(body, "Weapon:"); ok {
				grant = strings.TrimSpace(weapon)
				continue
			}
			s.Lines = append(s.Lines, Line{Speaker: speaker, Text: line})
		case strings.HasSuffix(line, ":") && !strings.Contains(line, " "):
			flush()
			speaker = strings.TrimSuffix(line, ":")
		default:
			para = append(para, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dialogue: parse %s: %w", name, err)
	}
	flush()
	if len(s.Lines) == 0 {
		return nil, fmt.Errorf("dialogue: %s has no lines", name)
	}
	return s, nil
}

// Session is a cursor over a script.
type Session struct {
	script *Script
	index  int
}

func NewSession(script *Script) *Session {
	return &Session{script: script}
}

func (s *Session) Script() *Script {
	if s == nil {
		return nil
	}
	return s.script
}

func (s *Session) Index() int {
	if s == nil {
		return 0
	}
	return s.index
}

// Done reports whether every line has been acknowledged.
func (s *Session) Done() bool {
	return s == nil || s.index >= s.script.Len()
}

// Current returns the line being shown.
func (s *Session) Current() (Line, bool) {
	if s.Done() {
		return Line{}, false
	}
	return s.script.Lines[s.index], true
}

// Advance acknowledges the current line and returns the next one; ok is
// false once the script is finished.
func (s *Session) Advance() (Line, bool) {
	if s.Done() {
		return Line{}, false
	}
	s.index++
	return s.Current()
}
