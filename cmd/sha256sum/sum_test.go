package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.gammaspectra.live/P2Pool/sha256"
	"git.gammaspectra.live/P2Pool/sha256/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	abcHex    = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	abc224Hex = "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"
	emptyHex  = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, contents := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600))
	}
	return dir
}

func silenceLog(t *testing.T) {
	old := utils.LogOutput
	utils.LogOutput = &bytes.Buffer{}
	t.Cleanup(func() {
		utils.LogOutput = old
	})
}

func TestPrintSums(t *testing.T) {
	silenceLog(t)
	dir := writeFiles(t, map[string]string{"abc": "abc", "empty": ""})
	abc, empty := filepath.Join(dir, "abc"), filepath.Join(dir, "empty")

	var out bytes.Buffer
	failed := printSums(&out, sha256.SHA256, []string{abc, empty, filepath.Join(dir, "missing")}, false)
	assert.Equal(t, 1, failed)
	assert.Equal(t, abcHex+"  "+abc+"\n"+emptyHex+"  "+empty+"\n", out.String())

	out.Reset()
	failed = printSums(&out, sha256.SHA224, []string{abc}, false)
	assert.Zero(t, failed)
	assert.Equal(t, abc224Hex+"  "+abc+"\n", out.String())

	out.Reset()
	failed = printSums(&out, sha256.SHA256, []string{abc}, true)
	assert.Zero(t, failed)

	var decoded entry
	require.NoError(t, utils.UnmarshalJSON(out.Bytes(), &decoded))
	assert.Equal(t, abc, decoded.Path)
	assert.Equal(t, abcHex, decoded.Digest.String())
	assert.Equal(t, byte('\n'), out.Bytes()[out.Len()-1])
}

func TestPrintSumsJSONPathNotEscaped(t *testing.T) {
	silenceLog(t)
	dir := writeFiles(t, map[string]string{"a&<b>": "abc"})
	path := filepath.Join(dir, "a&<b>")

	var out bytes.Buffer
	assert.Zero(t, printSums(&out, sha256.SHA256, []string{path}, true))
	assert.Equal(t, `{"path":"`+path+`","digest":"`+abcHex+`"}`+"\n", out.String())
}

func TestParseChecksumLine(t *testing.T) {
	sum, path, err := parseChecksumLine(abcHex + "  some file.txt")
	require.NoError(t, err)
	assert.Equal(t, "some file.txt", path)
	assert.Len(t, sum, sha256.Size)

	_, path, err = parseChecksumLine(abc224Hex + " *binary.bin")
	require.NoError(t, err)
	assert.Equal(t, "binary.bin", path)

	for _, line := range []string{"", abcHex, abcHex + "  ", "zz  file", "abcd  file"} {
		_, _, err = parseChecksumLine(line)
		assert.True(t, errors.Is(err, errMalformedLine), "line %q: %v", line, err)
	}
}

func TestCheckList(t *testing.T) {
	silenceLog(t)
	dir := writeFiles(t, map[string]string{"abc": "abc", "changed": "abd"})
	abc, changed := filepath.Join(dir, "abc"), filepath.Join(dir, "changed")

	list := strings.Join([]string{
		"# comment",
		abcHex + "  " + abc,
		abc224Hex + "  " + abc,
		abcHex + "  " + changed,
		"not a line",
		"",
	}, "\n")

	var out bytes.Buffer
	failed, err := checkList(&out, strings.NewReader(list))
	require.NoError(t, err)
	assert.Equal(t, 2, failed)
	assert.Equal(t, abc+": OK\n"+abc+": OK\n"+changed+": FAILED\n", out.String())
}

func TestFindDuplicates(t *testing.T) {
	silenceLog(t)
	dir := writeFiles(t, map[string]string{"a1": "same", "a2": "same", "b": "other", "a3": "same"})
	paths := []string{
		filepath.Join(dir, "a1"),
		filepath.Join(dir, "b"),
		filepath.Join(dir, "a2"),
		filepath.Join(dir, "a3"),
		filepath.Join(dir, "missing"),
	}

	var out bytes.Buffer
	failed := findDuplicates(&out, paths, 2)
	assert.Equal(t, 1, failed)

	same := sha256.Sum256([]byte("same"))
	assert.Equal(t, same.String()+"\n\t"+paths[0]+"\n\t"+paths[2]+"\n\t"+paths[3]+"\n", out.String())
}
