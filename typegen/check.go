package typegen

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/teranos/declgen/errors"
)

// CheckResult holds the result of an up-to-date check.
type CheckResult struct {
	UpToDate bool `json:"up_to_date"`
	// Missing files are generated but absent from the existing tree.
	Missing []string `json:"missing,omitempty"`
	// Extra files exist but are no longer generated.
	Extra []string `json:"extra,omitempty"`
	// Different files exist in both trees with different content.
	Different []string `json:"different,omitempty"`
	// Diffs maps each differing file to a unified diff (existing -> generated).
	Diffs map[string]string `json:"diffs,omitempty"`
}

// Files returns every path the check flagged, sorted.
func (r *CheckResult) Files() []string {
	out := make([]string, 0, len(r.Missing)+len(r.Extra)+len(r.Different))
	out = append(out, r.Missing...)
	out = append(out, r.Extra...)
	out = append(out, r.Different...)
	sort.Strings(out)
	return out
}

// CompareDirectories compares freshly generated files in generatedDir with the
// committed tree in existingDir. A missing existingDir counts every generated
// file as missing.
func CompareDirectories(generatedDir, existingDir string) (*CheckResult, error) {
	generated, err := listFiles(generatedDir)
	if err != nil {
		return nil, err
	}
	existing, err := listFiles(existingDir)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Diffs: make(map[string]string)}
	for _, rel := range generated {
		if !existing.has(rel) {
			result.Missing = append(result.Missing, rel)
			continue
		}
		diff, err := diffFiles(filepath.Join(existingDir, rel), filepath.Join(generatedDir, rel), rel)
		if err != nil {
			return nil, err
		}
		if diff != "" {
			result.Different = append(result.Different, rel)
			result.Diffs[rel] = diff
		}
	}
	for _, rel := range existing {
		if !generated.has(rel) {
			result.Extra = append(result.Extra, rel)
		}
	}

	result.UpToDate = len(result.Missing) == 0 && len(result.Extra) == 0 && len(result.Different) == 0
	return result, nil
}

type fileList []string

func (l fileList) has(rel string) bool {
	i := sort.SearchStrings(l, rel)
	return i < len(l) && l[i] == rel
}

// listFiles returns the slash-separated relative paths of every regular file
// under dir, sorted.
func listFiles(dir string) (fileList, error) {
	var out fileList
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}
	sort.Strings(out)
	return out, nil
}

// diffFiles returns a unified diff of two files, or "" when they are equal.
func diffFiles(existingPath, generatedPath, name string) (string, error) {
	existing, err := os.ReadFile(existingPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", existingPath)
	}
	generated, err := os.ReadFile(generatedPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", generatedPath)
	}
	if string(existing) == string(generated) {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to diff %s", name)
	}
	return diff, nil
}
