package scenario

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const indexNotFound = -1

func closeAndIgnoreErr(c io.Closer) {
	_ = c.Close()
}

func loadFileAsYAML(filePath string, v any) error {
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(buf, v)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(filePath), err)
	}
	return nil
}

func copyDirectory(dst, src string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer closeAndIgnoreErr(in)
		out, err := os.Create(target)
		if err != nil {
			return err
		}
		defer closeAndIgnoreErr(out)
		_, err = io.Copy(out, in)
		return err
	})
}
