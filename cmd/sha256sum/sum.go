package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"git.gammaspectra.live/P2Pool/sha256"
	"git.gammaspectra.live/P2Pool/sha256/types"
	"git.gammaspectra.live/P2Pool/sha256/utils"
	"github.com/dolthub/swiss"
	fasthex "github.com/tmthrgd/go-hex"
)

const stdinPath = "-"

type entry struct {
	Path   string      `json:"path"`
	Digest types.Bytes `json:"digest"`
}

func hashReader(v sha256.Variant, r io.Reader) ([]byte, error) {
	h := sha256.NewHasher(v, nil)
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

func hashPath(v sha256.Variant, path string) ([]byte, error) {
	if path == stdinPath {
		return hashReader(v, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sum, err := hashReader(v, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sum, nil
}

// printSums writes one line per path, returning the number of paths that failed
func printSums(w io.Writer, v sha256.Variant, paths []string, asJSON bool) (failed int) {
	for _, path := range paths {
		sum, err := hashPath(v, path)
		if err != nil {
			utils.Errorf("sha256sum", "%s", err)
			failed++
			continue
		}

		if asJSON {
			buf, err := utils.MarshalJSON(entry{Path: path, Digest: sum})
			if err != nil {
				utils.Errorf("sha256sum", "%s: %s", path, err)
				failed++
				continue
			}
			_, _ = w.Write(append(buf, '\n'))
			continue
		}
		_, _ = fmt.Fprintf(w, "%s  %s\n", fasthex.EncodeToString(sum), path)
	}
	return failed
}

var errMalformedLine = errors.New("malformed checksum line")

// parseChecksumLine parses "<hex digest>  <path>", with a single space or "*" binary marker also accepted.
func parseChecksumLine(line string) (sum []byte, path string, err error) {
	digest, rest, ok := strings.Cut(line, " ")
	if !ok || rest == "" {
		return nil, "", errMalformedLine
	}
	path = strings.TrimPrefix(strings.TrimPrefix(rest, " "), "*")
	if path == "" {
		return nil, "", errMalformedLine
	}

	if sum, err = fasthex.DecodeString(digest); err != nil {
		return nil, "", fmt.Errorf("%w: %w", errMalformedLine, err)
	}
	if len(sum) != sha256.Size && len(sum) != sha256.Size224 {
		return nil, "", fmt.Errorf("%w: digest of %d bytes", errMalformedLine, len(sum))
	}
	return sum, path, nil
}

// checkList verifies every line of list, the variant taken from each digest length.
func checkList(w io.Writer, list io.Reader) (failed int, err error) {
	scanner := bufio.NewScanner(list)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		expected, path, err := parseChecksumLine(line)
		if err != nil {
			utils.Errorf("sha256sum", "line %d: %s", lineNumber, err)
			failed++
			continue
		}

		v := sha256.SHA256
		if len(expected) == sha256.Size224 {
			v = sha256.SHA224
		}

		sum, err := hashPath(v, path)
		if err != nil {
			utils.Errorf("sha256sum", "%s", err)
			_, _ = fmt.Fprintf(w, "%s: FAILED open or read\n", path)
			failed++
			continue
		}
		if !slices.Equal(sum, expected) {
			_, _ = fmt.Fprintf(w, "%s: FAILED\n", path)
			failed++
			continue
		}
		_, _ = fmt.Fprintf(w, "%s: OK\n", path)
	}
	return failed, scanner.Err()
}

// findDuplicates hashes paths concurrently and writes every group of paths sharing a SHA-256 digest.
func findDuplicates(w io.Writer, paths []string, routines int) (failed int) {
	sums := make([]types.Hash, len(paths))
	errs := make([]error, len(paths))

	_ = utils.SplitWork(routines, uint64(len(paths)), func(workIndex uint64, _ int) error {
		sum, err := hashPath(sha256.SHA256, paths[workIndex])
		if err != nil {
			errs[workIndex] = err
			return nil
		}
		sums[workIndex] = types.HashFromBytes(sum)
		return nil
	}, nil)

	groups := swiss.NewMap[types.Hash, []string](uint32(len(paths)))
	var order []types.Hash
	for i, path := range paths {
		if errs[i] != nil {
			utils.Errorf("sha256sum", "%s", errs[i])
			failed++
			continue
		}
		group, ok := groups.Get(sums[i])
		if !ok {
			order = append(order, sums[i])
		}
		groups.Put(sums[i], append(group, path))
	}

	var duplicates int
	for _, sum := range order {
		group, _ := groups.Get(sum)
		if len(group) < 2 {
			continue
		}
		duplicates++
		_, _ = fmt.Fprintf(w, "%s\n", sum)
		for _, path := range group {
			_, _ = fmt.Fprintf(w, "\t%s\n", path)
		}
	}
	utils.Debugf("sha256sum", "%d files, %d distinct digests, %d duplicate groups", len(paths), groups.Count(), duplicates)
	return failed
}
