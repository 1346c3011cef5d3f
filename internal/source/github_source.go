package source

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/go-github/v50/github"

	"github.com/ucsc-xena/xena-gdc/internal/gh"
	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

// GithubSource serves reference files attached to GitHub release assets,
// for example probe maps published with an annotations repository.
type GithubSource struct {
	xenafile.FileSourceConfig

	logger *log.Logger

	collaborators struct {
		client *github.Client
	}
}

// NewGithubSource will provision a new GithubSource from the
// Xenafile (FileSourceConfig). If type is incorrect it will PANIC.
func NewGithubSource(c xenafile.FileSourceConfig, outLogger *log.Logger) *GithubSource {
	if c.Type != "" && c.Type != FileSourceTypeGithub {
		panic(panicMessageWrongFileSourceType)
	}

	if outLogger == nil {
		outLogger = log.New(os.Stderr, "[GitHub file source] ", log.Default().Flags())
	}

	return &GithubSource{
		FileSourceConfig: c,
		logger:           outLogger,
	}
}

func (src *GithubSource) init(ctx context.Context) error {
	if src.collaborators.client != nil {
		return nil
	}
	client, err := gh.Client(ctx, src.GithubToken)
	if err != nil {
		return fmt.Errorf("failed to setup the github client: %w", err)
	}
	src.collaborators.client = client
	return nil
}

// Configuration returns the configuration of the FileSource that came from the Xenafile.
// It should not be modified.
func (src *GithubSource) Configuration() xenafile.FileSourceConfig {
	return src.FileSourceConfig
}

func (src *GithubSource) ID() string   { return xenafile.FileSourceID(src.FileSourceConfig) }
func (src *GithubSource) Type() string { return FileSourceTypeGithub }

//counterfeiter:generate -o ./fakes_internal/release_by_tag_getter_asset_downloader.go --fake-name ReleaseByTagGetterAssetDownloader . releaseByTagGetterAssetDownloader

type releaseByTagGetterAssetDownloader interface {
	releaseByTagGetter
	releaseAssetDownloader
}

type releaseByTagGetter interface {
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, *github.Response, error)
}

type releaseAssetDownloader interface {
	DownloadReleaseAsset(ctx context.Context, owner, repo string, id int64, followRedirectsClient *http.Client) (rc io.ReadCloser, redirectURL string, err error)
}

// ResolveFiles matches the dataset's release by tag then its asset by
// name. Assets carry no md5, so the lock keeps MD5 empty and records the
// asset size for verification instead.
func (src *GithubSource) ResolveFiles(ctx context.Context, spec xenafile.DatasetSpec) ([]xenafile.FileLock, error) {
	if spec.Asset == "" {
		return nil, ErrNotFound
	}
	if spec.Repo == "" || spec.Tag == "" {
		return nil, fmt.Errorf("dataset %q needs repo and tag to resolve release asset %q", spec.Name, spec.Asset)
	}
	if err := src.init(ctx); err != nil {
		return nil, err
	}

	lock, err := lockFromReleaseAsset(ctx, src.collaborators.client.Repositories, src.Org, spec)
	if err != nil {
		return nil, err
	}
	lock.RemoteSource = src.ID()
	return []xenafile.FileLock{lock}, nil
}

func lockFromReleaseAsset(ctx context.Context, releaseGetter releaseByTagGetter, owner string, spec xenafile.DatasetSpec) (xenafile.FileLock, error) {
	release, response, err := releaseGetter.GetReleaseByTag(ctx, owner, spec.Repo, spec.Tag)
	if err != nil {
		if response != nil && response.StatusCode == http.StatusNotFound {
			return xenafile.FileLock{}, ErrNotFound
		}
		return xenafile.FileLock{}, err
	}
	if err := checkStatus(http.StatusOK, response.StatusCode); err != nil {
		return xenafile.FileLock{}, err
	}

	for _, asset := range release.Assets {
		if asset.GetName() != spec.Asset {
			continue
		}
		return xenafile.FileLock{
			Dataset:    spec.Name,
			FileName:   asset.GetName(),
			Size:       int64(asset.GetSize()),
			RemotePath: asset.GetBrowserDownloadURL(),
		}, nil
	}
	return xenafile.FileLock{}, ErrNotFound
}

// DownloadFile streams the asset named by the lock into dataDir. The
// release owner, repository, and tag are parsed back out of the lock's
// remote path, which is the asset's browser download URL.
func (src *GithubSource) DownloadFile(ctx context.Context, dataDir string, lock xenafile.FileLock) (LocalFile, error) {
	if err := src.init(ctx); err != nil {
		return LocalFile{}, err
	}
	src.logger.Printf(logLineDownload, lock.FileName, FileSourceTypeGithub, src.ID())
	return downloadAsset(ctx, dataDir, lock, src.collaborators.client.Repositories)
}

func downloadAsset(ctx context.Context, dataDir string, lock xenafile.FileLock, client releaseByTagGetterAssetDownloader) (LocalFile, error) {
	owner, repo, err := gh.OwnerAndRepoFromURI(lock.RemotePath)
	if err != nil {
		return LocalFile{}, err
	}
	tag := path.Base(path.Dir(lock.RemotePath))

	release, response, err := client.GetReleaseByTag(ctx, owner, repo, tag)
	if err != nil {
		return LocalFile{}, err
	}
	if err := checkStatus(http.StatusOK, response.StatusCode); err != nil {
		return LocalFile{}, err
	}

	var assetID int64
	for _, asset := range release.Assets {
		if asset.GetName() == lock.FileName {
			assetID = asset.GetID()
			break
		}
	}
	if assetID == 0 {
		return LocalFile{}, ErrNotFound
	}

	body, _, err := client.DownloadReleaseAsset(ctx, owner, repo, assetID, http.DefaultClient)
	if err != nil {
		return LocalFile{}, err
	}
	defer func() { _ = body.Close() }()

	outputFile := filepath.Join(dataDir, lock.FileName)

	file, err := os.Create(outputFile)
	if err != nil {
		return LocalFile{}, fmt.Errorf("failed to create file %q: %w", outputFile, err)
	}
	defer func() { _ = file.Close() }()

	size, err := io.Copy(file, body)
	if err != nil {
		return LocalFile{}, err
	}

	_, err = file.Seek(0, 0)
	if err != nil {
		return LocalFile{}, fmt.Errorf("error reseting file cursor: %w", err) // untested
	}

	hash := md5.New()
	_, err = io.Copy(hash, file)
	if err != nil {
		return LocalFile{}, fmt.Errorf("error hashing file contents: %w", err) // untested
	}

	lock.Size = size
	lock.MD5 = hex.EncodeToString(hash.Sum(nil))

	return LocalFile{FileLock: lock, LocalPath: outputFile}, nil
}
