// Package words loads and validates word lists.
//
// A word list is a newline-delimited text file, one word per line,
// whitespace-trimmed. Every word must use the letters a-z and every word
// must be the same length; the length of the first word sets the agreed
// length for the whole list. An embedded default list keeps the tool usable
// when no file is configured.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mkaeder/wordlemax/solver"
)

//go:embed default_words.txt
var embedded string

// Default returns the embedded word list.
func Default() []solver.Word {
	ret, err := Load(strings.NewReader(embedded))
	if err != nil {
		panic("embedded word list invalid: " + err.Error())
	}
	return ret
}

// Load reads one word per line from r. Lines are trimmed and lowercased;
// blank lines are skipped.
func Load(r io.Reader) ([]solver.Word, error) {
	scanner := bufio.NewScanner(r)
	var ret []solver.Word
	length := 0
	for line := 1; scanner.Scan(); line++ {
		text := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if text == "" {
			continue
		}
		if !isAlpha(text) {
			return nil, fmt.Errorf("line %d: word %q is not a-z", line, text)
		}
		if length == 0 {
			length = len(text)
		} else if len(text) != length {
			return nil, fmt.Errorf("line %d: %w: %q in list of %d-letter words", line, solver.ErrLengthMismatch, text, length)
		}
		ret = append(ret, solver.Word(text))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string) ([]solver.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	ret, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ret, nil
}

// Contains reports whether list holds word.
func Contains(list []solver.Word, word solver.Word) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
