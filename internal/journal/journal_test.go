package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	dir := t.TempDir()

	err := Append(dir, Entry{Timestamp: time.Now(), Action: "rollover", Page: "now", Detail: "archive/x.md"})
	require.NoError(t, err)
	err = Append(dir, Entry{Timestamp: time.Now(), Action: "toggle", Page: "next"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	var first Entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "rollover", first.Action)
	require.Equal(t, "now", first.Page)
}

func TestRecordNeverFails(t *testing.T) {
	// Recording into a nonexistent directory must not panic or error.
	Record(filepath.Join(t.TempDir(), "missing"), "toggle", "now", "")
}

func TestTruncation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, fileName)

	var b strings.Builder
	for i := 0; i < maxEntries+100; i++ {
		b.WriteString(`{"timestamp":"2026-08-29T10:00:00Z","action":"toggle"}` + "\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), fileMode))

	err := Append(dir, Entry{Timestamp: time.Now(), Action: "rollover", Page: "now"})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	count := 0
	last := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
		last = scanner.Text()
	}
	require.NoError(t, scanner.Err())
	require.Equal(t, maxEntries, count)
	require.Contains(t, last, `"action":"rollover"`)
}
