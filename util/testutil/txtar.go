package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func ParseTxtar(src []byte, filename string) *Archive {
	tar := txtar.Parse(src)

	ar := &Archive{}
	ar.Filename = filename
	ar.Tar = tar

	line := countLines(tar.Comment)
	for _, f := range tar.Files {
		line++ // file header line
		ar.Lines = append(ar.Lines, line)
		line += countLines(f.Data)
	}
	return ar
}

func ParseTxtarFile(filename string) (*Archive, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseTxtar(src, filename), nil
}

//----------

type Archive struct {
	Tar      *txtar.Archive
	Filename string // for errors
	Lines    []int  // Tar.Files[] line position in src
}

func (ar *Archive) Error(err error, i int) error {
	return fmt.Errorf("%s:%d: %w", ar.Filename, ar.Lines[i]+1, err)
}

//----------

// Runs each "name.in" file with its "name.out" file.
func RunArchive2(t *testing.T, ar *Archive,
	fn func(t2 *testing.T, name string, input, output []byte) error,
) {
	RunArchive(t, ar, []string{".in", ".out"},
		func(t2 *testing.T, name string, data [][]byte) error {
			return fn(t2, name, data[0], data[1])
		},
	)
}

// Expects n files named with the filesExts extensions. Stops on the first failed test.
func RunArchive(t *testing.T, ar *Archive, filesExts []string,
	fn func(t2 *testing.T, name string, datas [][]byte) error,
) {
	fm := map[string]txtar.File{}
	for _, file := range ar.Tar.Files {
		if _, ok := fm[file.Name]; ok {
			t.Fatalf("file already defined: %v", file.Name)
		}
		fm[file.Name] = file
	}

	for fi, file := range ar.Tar.Files {
		datas := [][]byte{}
		for i, ext := range filesExts {
			fname := replaceExt(file.Name, ext)

			// run only files that match the first ext
			if i == 0 && fname != file.Name {
				break
			}

			f, ok := fm[fname]
			if !ok {
				if i > 0 {
					t.Logf("warning: missing %q for %v", ext, file.Name)
				}
				break
			}
			datas = append(datas, f.Data)
		}
		if len(datas) != len(filesExts) {
			continue
		}

		name := strings.TrimSuffix(filepath.Base(file.Name), filesExts[0])
		ok2 := t.Run(name, func(t2 *testing.T) {
			err := fn(t2, name, datas)
			if err != nil {
				t2.Fatal(ar.Error(err, fi))
			}
		})
		if !ok2 {
			break
		}
	}
}

//----------

// Useful to compare outputs without caring for indentation or empty lines.
func TrimLineSpaces(str string) string {
	a := strings.Split(str, "\n")
	u := []string{}
	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" {
			u = append(u, s)
		}
	}
	return strings.Join(u, "\n")
}

//----------

func replaceExt(filename, ext string) string {
	ext2 := filepath.Ext(filename)
	return filename[:len(filename)-len(ext2)] + ext
}

func countLines(b []byte) int {
	return bytes.Count(b, []byte("\n"))
}
