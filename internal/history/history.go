// Package history reads Xenafile.lock state out of git history so lock
// revisions can be compared without checking them out.
package history

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"gopkg.in/yaml.v2"

	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

// LockAtRef resolves ref (a hash, branch, tag, or anything else
// rev-parse accepts) and reads the lock at that commit. The path may
// point at the Xenafile, the lock itself, or their directory.
func LockAtRef(repo *git.Repository, ref, path string) (xenafile.XenafileLock, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return xenafile.XenafileLock{}, fmt.Errorf("failed to resolve revision %q: %w", ref, err)
	}
	return LockAtCommit(repo, *hash, path)
}

// LockAtCommit reads the lock out of the tree at commitHash.
func LockAtCommit(repo *git.Repository, commitHash plumbing.Hash, path string) (xenafile.XenafileLock, error) {
	lockPath := lockPathInTree(path)

	commit, err := repo.CommitObject(commitHash)
	if err != nil {
		return xenafile.XenafileLock{}, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return xenafile.XenafileLock{}, err
	}
	entry, err := tree.File(lockPath)
	if err != nil {
		return xenafile.XenafileLock{}, fmt.Errorf("failed to find %s at %s: %w", lockPath, commitHash.String()[:7], err)
	}
	fp, err := entry.Reader()
	if err != nil {
		return xenafile.XenafileLock{}, err
	}
	defer closeAndIgnoreError(fp)
	buf, err := io.ReadAll(fp)
	if err != nil {
		return xenafile.XenafileLock{}, err
	}

	var lock xenafile.XenafileLock
	if err := yaml.Unmarshal(buf, &lock); err != nil {
		return xenafile.XenafileLock{}, fmt.Errorf("failed to unmarshall %s at %s: %w", lockPath, commitHash.String()[:7], err)
	}
	return lock, nil
}

// lockPathInTree normalizes a Xenafile, lock, or directory path into the
// lock's slash-separated path inside the repository tree.
func lockPathInTree(path string) string {
	if ext := filepath.Ext(path); ext == ".lock" {
		path = strings.TrimSuffix(path, ".lock")
	}
	if filepath.Base(path) == "Xenafile" {
		path = filepath.Dir(path)
	}
	if path == "." {
		path = ""
	}
	return filepath.ToSlash(filepath.Join(path, "Xenafile.lock"))
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
