package wordfreq

import (
	"errors"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Hello", expected: "hello"},
		{input: "world!", expected: "world"},
		{input: "don't", expected: "dont"},
		{input: "e-mail", expected: "email"},
		{input: "\"Quoted,\"", expected: "quoted"},
		{input: "abc123def", expected: "abcdef"},
		{input: "42", expected: ""},
		{input: "---", expected: ""},
		{input: "", expected: ""},
		{input: "naïve", expected: "nave"},
		{input: "ПРИВЕТ", expected: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestReadWords(t *testing.T) {
	t.Run("main-test", func(t *testing.T) {
		text := "The quick brown fox,\n  jumps over THE lazy dog!\n\n-- 123 --\nthe end."
		words, err := ReadWords(strings.NewReader(text))
		require.NoError(t, err)
		require.Equal(t,
			[]string{"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog", "the", "end"},
			words)
	})

	t.Run("empty", func(t *testing.T) {
		words, err := ReadWords(strings.NewReader(""))
		require.NoError(t, err)
		require.NotNil(t, words)
		require.Empty(t, words)
	})

	t.Run("long-line", func(t *testing.T) {
		line := "first " + strings.Repeat("word ", 300000) + "last"
		words, err := ReadWords(strings.NewReader(line))
		require.NoError(t, err)
		require.Len(t, words, 300002)
		require.Equal(t, "first", words[0])
		require.Equal(t, "last", words[len(words)-1])
	})

	t.Run("long-word", func(t *testing.T) {
		text := "a " + strings.Repeat("b", 2*1024*1024) + "\nc"
		words, err := ReadWords(strings.NewReader(text))
		require.NoError(t, err)
		require.Len(t, words, 3)
		require.Equal(t, "a", words[0])
		require.Len(t, words[1], 2*1024*1024)
		require.Equal(t, "c", words[2])
	})

	t.Run("unicode-spaces", func(t *testing.T) {
		words, err := ReadWords(strings.NewReader("one\ttwo\u00a0three\r\nfour\u2003five"))
		require.NoError(t, err)
		require.Equal(t, []string{"one", "two", "three", "four", "five"}, words)
	})
}

func TestReadHTMLWords(t *testing.T) {
	doc := `<html><head><title>Fox Story</title><style>body { color: red }</style></head>
<body><script>var hidden = "script";</script><template><p>hidden template</p></template>
<p>The <b>quick</b> fox.</p><div>The&nbsp;dog &amp; the cat</div></body></html>`

	words, err := ReadHTMLWords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []string{"fox", "story", "the", "quick", "fox", "the", "dog", "the", "cat"}, words)
}

func TestReadHTMLWordsLongText(t *testing.T) {
	doc := "<p>" + strings.Repeat("word ", 300000) + "</p>"
	words, err := ReadHTMLWords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, words, 300000)
}

func TestReadFile(t *testing.T) {
	tmpDir := prepareTempDir(t)

	t.Run("text-file", func(t *testing.T) {
		filepath := path.Join(tmpDir, "words.txt")
		creteFile(t, filepath, "one two two\nthree three three\n")

		words, err := ReadFile(filepath)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"one": 1, "two": 2, "three": 3}, Count(words))
	})

	t.Run("html-file", func(t *testing.T) {
		filepath := path.Join(tmpDir, "page.HTML")
		creteFile(t, filepath, "<p>one <i>two</i></p><script>three</script>")

		words, err := ReadFile(filepath)
		require.NoError(t, err)
		require.Equal(t, []string{"one", "two"}, words)
	})

	t.Run("non-exist-file", func(t *testing.T) {
		_, err := ReadFile(path.Join(tmpDir, "_some_non_exist_file_"))
		require.Truef(t, errors.Is(err, ErrFileNotFound), "actual error %q", err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := ReadFile(tmpDir)
		require.Truef(t, errors.Is(err, ErrReadFile), "actual error %q", err)
	})
}

func TestCount(t *testing.T) {
	require.Equal(t, map[string]int{}, Count(nil))
	require.Equal(t,
		map[string]int{"a": 3, "b": 1, "c": 2},
		Count([]string{"a", "c", "a", "b", "c", "a"}))
}

func creteFile(t *testing.T, filepath string, data string) {
	t.Helper()

	f, err := os.Create(filepath)
	require.NoError(t, err, "failed to create temp file")
	defer func() {
		require.NoError(t, f.Close(), "failed to close temp file")
	}()

	_, err = f.Write([]byte(data))
	require.NoError(t, err, "failed write to temp file")
}

func prepareTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "wordfreq-*")
	require.NoError(t, err, "failed to create temp dir")

	t.Cleanup(func() {
		require.NoError(t, os.RemoveAll(dir), "failed to remove temp dir")
	})
	return dir
}
