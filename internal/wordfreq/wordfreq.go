package wordfreq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrReadFile     = errors.New("failed to read file")
)

var nonLetters = regexp.MustCompile("[^a-zA-Z]+")

// Normalize removes everything except latin letters and lower-cases the rest.
func Normalize(word string) string {
	return strings.ToLower(nonLetters.ReplaceAllString(word, ""))
}

// ReadWords reads whitespace separated words rune by rune, so neither lines
// nor words are limited in length. Words that are empty after normalization
// are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	words := make([]string, 0)
	reader := bufio.NewReader(r)
	field := strings.Builder{}
	flush := func() {
		if word := Normalize(field.String()); word != "" {
			words = append(words, word)
		}
		field.Reset()
	}

	for {
		c, _, err := reader.ReadRune()
		if errors.Is(err, io.EOF) {
			flush()
			return words, nil
		}
		if err != nil {
			return nil, err
		}
		if unicode.IsSpace(c) {
			if field.Len() > 0 {
				flush()
			}
			continue
		}
		field.WriteRune(c)
	}
}

// ReadFile reads words from the file at path. Files with .html or .htm
// extension are read as HTML documents.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w %q: %w", ErrReadFile, path, err)
	}
	defer f.Close()

	read := ReadWords
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		read = ReadHTMLWords
	}

	words, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadFile, path, err)
	}
	return words, nil
}

// Count builds the frequency table of words.
func Count(words []string) map[string]int {
	freq := make(map[string]int)
	for _, w := range words {
		freq[w]++
	}
	return freq
}
