package harness

import (
	"os"
	"path/filepath"
)

// Fixture is one recorded test case: an input script for the subject program
// paired with the expected output of running it. The pairing is by file name;
// whether the expected file actually exists is not checked until comparison
// time, where its absence reads as a mismatch.
type Fixture struct {
	ID           string
	InputPath    string
	ExpectedPath string
}

// LoadFixtureSet enumerates the input directory and derives one Fixture per
// regular file in it, in sorted name order, so repeated runs report cases in
// the same sequence. The file names themselves are the authoritative list of
// fixture IDs.
func LoadFixtureSet(inputDir, expectedDir string) ([]Fixture, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, &FixtureLoadError{Dir: inputDir, Err: err}
	}
	var fixtures []Fixture
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id := entry.Name()
		fixtures = append(fixtures, Fixture{
			ID:           id,
			InputPath:    filepath.Join(inputDir, id),
			ExpectedPath: filepath.Join(expectedDir, id),
		})
	}
	return fixtures, nil
}
