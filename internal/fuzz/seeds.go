package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB cap for the seed corpus

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".tan" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addLanguageSeeds plants hand-written snippets covering every grammar
// corner: the dot forms, the four bracket shapes, the '#' references,
// whitespace-split names and the deliberate error forms.
func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		";",
		"x = 2.5; y = .5; z = 2.",
		"a b c = d e f",
		"p.x_1 ^ 2 + p.y_1 ^ 2",
		"mid = (a + b) / 2;",
		"r := |C, P|; A ::= pi * r ^ 2",
		"angle(#1, #2) ~= 90°",
		"[1., 2., 3.,]",
		"{x + y}",
		"f (x, y) -> g(x)",
		"segment = A .. B ++ C",
		"bad = , ; | | |",
		"\"text with // and\nnewline\"",
		"x ~>= y & y ~<= z <> w",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
