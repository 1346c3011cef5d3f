package xenafile

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

var (
	uuidExp = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	md5Exp  = regexp.MustCompile(`^[0-9a-f]{32}$`)
)

func Validate(spec Xenafile, lock XenafileLock) []error {
	var result []error

	result = append(result, checkSources(spec)...)
	result = append(result, checkDatasets(spec)...)

	for index, fileLock := range lock.Files {
		name := fileLock.UUID
		if name == "" {
			name = fileLock.FileName
		}

		// Release assets are identified by dataset and file name; GitHub
		// assigns them no GDC uuid.
		src := findSource(spec, fileLock.RemoteSource)
		fromGithubAsset := src != nil && src.Type == FileSourceTypeGithub

		if fileLock.UUID == "" && !fromGithubAsset {
			result = append(result, fmt.Errorf("file at index %d in Xenafile.lock missing uuid", index))
			continue
		}
		if fileLock.UUID != "" && !uuidExp.MatchString(fileLock.UUID) {
			result = append(result, fmt.Errorf("file %s (index %d in Xenafile.lock) has malformed uuid", fileLock.UUID, index))
		}
		if fileLock.MD5 != "" && !md5Exp.MatchString(fileLock.MD5) {
			result = append(result, fmt.Errorf("file %s (index %d in Xenafile.lock) has malformed md5", name, index))
		}
		if _, err := spec.FindDatasetWithName(fileLock.Dataset); err != nil {
			result = append(result, fmt.Errorf("file %s locked for dataset %q not declared in Xenafile", name, fileLock.Dataset))
		}
		if fileLock.RemoteSource != "" && src == nil {
			result = append(result, fmt.Errorf("file %s locked from source %q not configured in Xenafile", name, fileLock.RemoteSource))
		}
	}

	result = append(result, checkDuplicateUUIDs(lock)...)

	if err := checkDataReleaseConstraint(spec, lock); err != nil {
		result = append(result, err)
	}

	if len(result) > 0 {
		return result
	}

	return nil
}

func checkSources(spec Xenafile) []error {
	var result []error
	seen := make(map[string]struct{}, len(spec.FileSources))
	for index, config := range spec.FileSources {
		switch config.Type {
		case FileSourceTypeGDC, FileSourceTypeS3, FileSourceTypeGithub:
		default:
			result = append(result, fmt.Errorf("file source at index %d has unknown type %q", index, config.Type))
		}
		id := FileSourceID(config)
		if id == "" {
			result = append(result, fmt.Errorf("file source at index %d has no id", index))
			continue
		}
		if _, dup := seen[id]; dup {
			result = append(result, fmt.Errorf("duplicate file source id %q", id))
		}
		seen[id] = struct{}{}
	}
	return result
}

func checkDatasets(spec Xenafile) []error {
	var result []error
	seen := make(map[string]struct{}, len(spec.Datasets))
	for index, dataset := range spec.Datasets {
		if dataset.Name == "" {
			result = append(result, fmt.Errorf("dataset at index %d missing name", index))
			continue
		}
		if _, dup := seen[dataset.Name]; dup {
			result = append(result, fmt.Errorf("duplicate dataset name %q", dataset.Name))
		}
		seen[dataset.Name] = struct{}{}

		if dataset.Source != "" && findSource(spec, dataset.Source) == nil {
			result = append(result, fmt.Errorf("dataset %q references source %q not configured in Xenafile", dataset.Name, dataset.Source))
		}
		if len(dataset.QueryConditions()) == 0 && dataset.Asset == "" {
			result = append(result, fmt.Errorf("dataset %q selects no files: it needs query conditions or a release asset", dataset.Name))
		}
	}
	return result
}

func checkDuplicateUUIDs(lock XenafileLock) []error {
	var result []error
	seen := make(map[string]struct{}, len(lock.Files))
	for _, fileLock := range lock.Files {
		if fileLock.UUID == "" {
			continue
		}
		if _, dup := seen[fileLock.UUID]; dup {
			result = append(result, fmt.Errorf("file %s locked more than once", fileLock.UUID))
		}
		seen[fileLock.UUID] = struct{}{}
	}
	return result
}

func checkDataReleaseConstraint(spec Xenafile, lock XenafileLock) error {
	if lock.DataRelease == "" {
		return nil
	}

	v, err := semver.NewVersion(lock.DataRelease)
	if err != nil {
		return fmt.Errorf("Xenafile.lock has invalid data release version %q: %w", lock.DataRelease, err)
	}

	if spec.DataRelease != "" {
		c, err := semver.NewConstraint(spec.DataRelease)
		if err != nil {
			return fmt.Errorf("Xenafile has invalid data_release constraint: %w", err)
		}

		matches, errs := c.Validate(v)
		if !matches {
			return fmt.Errorf("data release in lock %q does not match constraint %q: %v",
				lock.DataRelease, spec.DataRelease, errs)
		}
	}

	return nil
}

func findSource(spec Xenafile, id string) *FileSourceConfig {
	for i := range spec.FileSources {
		if FileSourceID(spec.FileSources[i]) == id {
			return &spec.FileSources[i]
		}
	}
	return nil
}
