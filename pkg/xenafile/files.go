package xenafile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

func InterpolateAndParseXenafile(in io.Reader, templateVariables map[string]interface{}) (Xenafile, error) {
	xenafileYAML, err := io.ReadAll(in)
	if err != nil {
		return Xenafile{}, fmt.Errorf("unable to read Xenafile: %w", err)
	}

	interpolated, err := interpolate("Xenafile", xenafileYAML, templateVariables)
	if err != nil {
		return Xenafile{}, err
	}

	var xenafile Xenafile
	return xenafile, yaml.Unmarshal(interpolated, &xenafile)
}

func ResolveXenafilePath(path string) (string, error) {
	if ext := filepath.Ext(path); ext == ".lock" {
		path = strings.TrimSuffix(path, ".lock")
	}
	if filepath.Base(path) == "Xenafile" {
		path = filepath.Dir(path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("xenafile invalid expected a path to a Xenafile")
	}
	return filepath.Join(path, "Xenafile"), nil
}

func ReadXenafileAndXenafileLock(path string) (Xenafile, XenafileLock, error) {
	xenafile, err := ReadXenafile(path)
	if err != nil {
		return Xenafile{}, XenafileLock{}, err
	}
	lock, err := ReadXenafileLock(path)
	if err != nil {
		return Xenafile{}, XenafileLock{}, err
	}

	return xenafile, lock, nil
}

func ReadXenafile(path string) (Xenafile, error) {
	xf, err := os.ReadFile(path)
	if err != nil {
		return Xenafile{}, fmt.Errorf("failed to read Xenafile: %w", err)
	}

	var xenafile Xenafile
	err = yaml.Unmarshal(xf, &xenafile)
	if err != nil {
		return Xenafile{}, fmt.Errorf("failed to unmarshall Xenafile: %w", err)
	}

	return xenafile, nil
}

func ReadXenafileLock(path string) (XenafileLock, error) {
	xfl, err := os.ReadFile(path + ".lock")
	if err != nil {
		return XenafileLock{}, fmt.Errorf("failed to read Xenafile.lock: %w", err)
	}

	var lock XenafileLock
	err = yaml.Unmarshal(xfl, &lock)
	if err != nil {
		return XenafileLock{}, fmt.Errorf("failed to unmarshall Xenafile.lock: %w", err)
	}

	return lock, nil
}

func WriteXenafile(path string, xf Xenafile) error {
	if filepath.Base(path) != "Xenafile" {
		path = filepath.Join(path, "Xenafile")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeAndIgnoreError(f)
	e := yaml.NewEncoder(f)
	defer closeAndIgnoreError(e)
	return e.Encode(xf)
}

func WriteXenafileLock(path string, lock XenafileLock) error {
	if ext := filepath.Ext(path); ext != ".lock" {
		path += ".lock"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeAndIgnoreError(f)
	e := yaml.NewEncoder(f)
	defer closeAndIgnoreError(e)
	return e.Encode(lock)
}

func closeAndIgnoreError(c io.Closer) {
	_ = c.Close()
}
