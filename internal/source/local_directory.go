package source

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

type LocalDataDirectory struct {
	logger *log.Logger
}

func NewLocalDataDirectory(logger *log.Logger) LocalDataDirectory {
	return LocalDataDirectory{
		logger: logger,
	}
}

// GetLocalFiles scans the data directory and checksums every regular
// file. The returned entries carry only file name, size, and md5; their
// dataset and uuid are adopted from a lock when Partition matches them.
func (l LocalDataDirectory) GetLocalFiles(dataDir string) ([]LocalFile, error) {
	var localFiles []LocalFile

	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		localPath := filepath.Join(dataDir, entry.Name())
		sum, err := CalculateMD5(localPath, osfs.New(""))
		if err != nil {
			return nil, fmt.Errorf("couldn't calculate md5 sum of %q: %w", localPath, err) // untested
		}

		localFiles = append(localFiles, LocalFile{
			FileLock: xenafile.FileLock{
				FileName: entry.Name(),
				MD5:      sum,
				Size:     info.Size(),
			},
			LocalPath: localPath,
		})
	}
	return localFiles, nil
}

func (l LocalDataDirectory) DeleteExtraFiles(extraFileSet []LocalFile, noConfirm bool) error {
	var doDeletion byte

	if len(extraFileSet) == 0 {
		return nil
	}

	if noConfirm {
		doDeletion = 'y'
	} else {
		l.logger.Println("Warning: xena-gdc will delete the following files:")

		sort.SliceStable(extraFileSet, func(i, j int) bool {
			return extraFileSet[i].LocalPath < extraFileSet[j].LocalPath
		})

		for _, file := range extraFileSet {
			l.logger.Printf("- %s\n", file.LocalPath)
		}

		l.logger.Printf("Are you sure you want to delete these files? [yN]")

		_, _ = fmt.Scanf("%c", &doDeletion)
	}

	if doDeletion == 'y' || doDeletion == 'Y' {
		err := l.deleteFiles(extraFileSet)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l LocalDataDirectory) deleteFiles(filesToDelete []LocalFile) error {
	for _, file := range filesToDelete {
		err := os.Remove(file.LocalPath)
		if err != nil {
			l.logger.Printf("error removing file %s: %v\n", file.FileName, err)
			return fmt.Errorf("failed to delete file %s", file.FileName)
		}

		l.logger.Printf("removed file %s\n", file.FileName)
	}

	return nil
}

// Partition matches locks against the local scan. Locks with an md5
// match by checksum; md5-less locks (github release assets) match by
// name and size. Matched locals adopt the lock's identity.
func Partition(locks []xenafile.FileLock, localFiles []LocalFile) (intersection []LocalFile, missing []xenafile.FileLock, extra []LocalFile) {
	missing = make([]xenafile.FileLock, len(locks))
	copy(missing, locks)

nextFile:
	for _, localFile := range localFiles {
		for j, lock := range missing {
			if lockMatchesLocal(lock, localFile) {
				localFile.FileLock = lock
				intersection = append(intersection, localFile)
				missing = append(missing[:j], missing[j+1:]...)
				continue nextFile
			}
		}

		extra = append(extra, localFile)
	}

	return intersection, missing, extra
}

func lockMatchesLocal(lock xenafile.FileLock, localFile LocalFile) bool {
	if lock.MD5 != "" {
		return lock.MD5 == localFile.MD5
	}
	return lock.FileName == localFile.FileName && lock.Size == localFile.Size
}

func CalculateMD5(filePath string, fs billy.Filesystem) (string, error) {
	f, err := fs.Open(filePath)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := md5.New()
	_, err = io.Copy(h, f)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
