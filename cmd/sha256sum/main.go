package main

import (
	"flag"
	"os"

	"git.gammaspectra.live/P2Pool/sha256"
	"git.gammaspectra.live/P2Pool/sha256/utils"
)

func main() {
	use224 := flag.Bool("224", false, "Compute SHA-224 instead of SHA-256")
	asJSON := flag.Bool("json", false, "Output one JSON object per file")
	checkFile := flag.String("c", "", "Verify the checksums listed in this file")
	dupes := flag.Bool("dupes", false, "Print groups of files with identical SHA-256 digests")
	routines := flag.Int("routines", 0, "Number of files hashed concurrently with -dupes, 0 for one per CPU")
	debug := flag.Bool("debug", false, "Enable debug logging")
	debugCaller := flag.Bool("debug-caller", false, "Prefix log lines with the calling file, line and function")
	flag.Parse()

	// stdout carries checksums
	utils.LogOutput = os.Stderr
	if *debug {
		utils.GlobalLogLevel |= utils.LogLevelDebug
	}
	if *debugCaller {
		utils.LogFile = true
		utils.LogFunc = true
	}

	variant := sha256.SHA256
	if *use224 {
		variant = sha256.SHA224
	}

	paths := flag.Args()

	var failed int
	switch {
	case *checkFile != "":
		var list *os.File
		if *checkFile == stdinPath {
			list = os.Stdin
		} else {
			f, err := os.Open(*checkFile)
			if err != nil {
				utils.Fatalf("could not open checksum list: %s", err)
			}
			defer f.Close()
			list = f
		}
		n, err := checkList(os.Stdout, list)
		if err != nil {
			utils.Fatalf("could not read checksum list: %s", err)
		}
		failed = n
		if failed > 0 {
			utils.Errorf("sha256sum", "%d computed checksums did NOT match", failed)
		}
	case *dupes:
		if *use224 {
			utils.Noticef("sha256sum", "-224 is ignored with -dupes")
		}
		if len(paths) == 0 {
			utils.Fatalf("-dupes needs at least one file")
		}
		failed = findDuplicates(os.Stdout, paths, *routines)
	default:
		if len(paths) == 0 {
			paths = []string{stdinPath}
		}
		failed = printSums(os.Stdout, variant, paths, *asJSON)
	}

	if failed > 0 {
		//nolint:gocritic
		os.Exit(1)
	}
}
