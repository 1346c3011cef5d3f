package history

import (
	"sort"

	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

// LockDiff describes how a Xenafile.lock changed between two revisions.
type LockDiff struct {
	DataRelease DataReleaseTransition

	Added   []xenafile.FileLock
	Removed []xenafile.FileLock
	Changed []FileChange
}

func (diff LockDiff) Empty() bool {
	return !diff.DataRelease.Changed() &&
		len(diff.Added) == 0 &&
		len(diff.Removed) == 0 &&
		len(diff.Changed) == 0
}

type DataReleaseTransition struct {
	From, To string
}

func (transition DataReleaseTransition) Changed() bool {
	return transition.From != transition.To
}

// FileChange pairs the two lock entries for a file whose UUID appears in
// both revisions but whose other fields differ.
type FileChange struct {
	From, To xenafile.FileLock
}

// Fields names the lock fields that differ, in struct order. The remote
// source and path collapse into a single "remote" entry.
func (change FileChange) Fields() []string {
	var fields []string
	if change.From.Dataset != change.To.Dataset {
		fields = append(fields, "dataset")
	}
	if change.From.FileName != change.To.FileName {
		fields = append(fields, "file_name")
	}
	if change.From.MD5 != change.To.MD5 {
		fields = append(fields, "md5")
	}
	if change.From.Size != change.To.Size {
		fields = append(fields, "size")
	}
	if change.From.Label != change.To.Label {
		fields = append(fields, "label")
	}
	if change.From.RemoteSource != change.To.RemoteSource ||
		change.From.RemotePath != change.To.RemotePath {
		fields = append(fields, "remote")
	}
	return fields
}

// DiffLocks compares lock entries by UUID. An entry counts as changed,
// not as a remove/add pair, when its UUID survives the transition.
func DiffLocks(from, to xenafile.XenafileLock) LockDiff {
	diff := LockDiff{
		DataRelease: DataReleaseTransition{From: from.DataRelease, To: to.DataRelease},
	}

	previous := make(map[string]xenafile.FileLock, len(from.Files))
	for _, file := range from.Files {
		previous[file.UUID] = file
	}
	current := make(map[string]struct{}, len(to.Files))
	for _, file := range to.Files {
		current[file.UUID] = struct{}{}

		before, existed := previous[file.UUID]
		switch {
		case !existed:
			diff.Added = append(diff.Added, file)
		case before != file:
			diff.Changed = append(diff.Changed, FileChange{From: before, To: file})
		}
	}
	for _, file := range from.Files {
		if _, exists := current[file.UUID]; !exists {
			diff.Removed = append(diff.Removed, file)
		}
	}

	sortFileLocks(diff.Added)
	sortFileLocks(diff.Removed)
	sort.Slice(diff.Changed, func(i, j int) bool {
		return lessFileLock(diff.Changed[i].To, diff.Changed[j].To)
	})

	return diff
}

func sortFileLocks(files []xenafile.FileLock) {
	sort.Slice(files, func(i, j int) bool {
		return lessFileLock(files[i], files[j])
	})
}

func lessFileLock(a, b xenafile.FileLock) bool {
	if a.Dataset != b.Dataset {
		return a.Dataset < b.Dataset
	}
	if a.FileName != b.FileName {
		return a.FileName < b.FileName
	}
	return a.UUID < b.UUID
}
