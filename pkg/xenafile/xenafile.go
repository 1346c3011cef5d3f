package xenafile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Xenafile declares where dataset files come from and which files belong
// to each dataset. It holds intent: queries and constraints. The exact
// files resolved from those queries live in XenafileLock.
type Xenafile struct {
	FileSources []FileSourceConfig `yaml:"file_sources,omitempty"`

	// DataRelease constrains the GDC data release the lock may be
	// resolved against. If not set, it will default to ">0".
	// See https://github.com/Masterminds/semver for syntax
	DataRelease string `yaml:"data_release,omitempty"`

	Datasets []DatasetSpec `yaml:"datasets,omitempty"`
}

func (xf Xenafile) DataReleaseConstraint() (*semver.Constraints, error) {
	release := xf.DataRelease
	if release == "" {
		release = ">0"
	}
	c, err := semver.NewConstraint(release)
	if err != nil {
		return nil, fmt.Errorf("expected data_release to be a constraint: %w", err)
	}
	return c, nil
}

func (xf Xenafile) FindDatasetWithName(name string) (DatasetSpec, error) {
	for _, d := range xf.Datasets {
		if d.Name == name {
			return d, nil
		}
	}
	return DatasetSpec{}, errors.New("not found")
}

type FileSourceConfig struct {
	Type            string `yaml:"type"`
	ID              string `yaml:"id,omitempty"`
	Endpoint        string `yaml:"endpoint,omitempty"`
	Token           string `yaml:"token,omitempty"`
	Bucket          string `yaml:"bucket,omitempty"`
	Region          string `yaml:"region,omitempty"`
	AccessKeyId     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`
	RoleARN         string `yaml:"role_arn,omitempty"`
	PathTemplate    string `yaml:"path_template,omitempty"`
	Org             string `yaml:"org,omitempty"`
	GithubToken     string `yaml:"github_token,omitempty"`
}

const (
	FileSourceTypeGDC    = "gdc"
	FileSourceTypeS3     = "s3"
	FileSourceTypeGithub = "github"
)

// FileSourceID falls back to a type-specific field when the id is not
// set so old Xenafiles without explicit ids keep working.
func FileSourceID(c FileSourceConfig) string {
	if c.ID != "" {
		return c.ID
	}
	switch c.Type {
	case FileSourceTypeS3:
		return c.Bucket
	case FileSourceTypeGithub:
		return c.Org
	default:
		return c.Type
	}
}

// DatasetSpec names a set of GDC files selected by query conditions.
// Project, DataType, and WorkflowType are the common conditions; Filters
// holds any additional field/value equality pairs. All conditions are
// AND-combined.
type DatasetSpec struct {
	// Name is a required field and must be set with the dataset name
	Name string `yaml:"name"`

	Project      string `yaml:"project,omitempty"`
	DataType     string `yaml:"data_type,omitempty"`
	WorkflowType string `yaml:"workflow_type,omitempty"`

	Filters map[string]string `yaml:"filters,omitempty"`

	// LabelField is the GDC file field whose value labels each file's
	// sample, for example cases.samples.submitter_id.
	LabelField string `yaml:"label_field,omitempty"`

	// Source selects the file source files for this dataset resolve
	// from. Empty means the first configured source.
	Source string `yaml:"source,omitempty"`

	// Repo, Tag, and Asset select a release asset for github-sourced
	// reference files such as probe maps.
	Repo  string `yaml:"repo,omitempty"`
	Tag   string `yaml:"tag,omitempty"`
	Asset string `yaml:"asset,omitempty"`
}

// QueryConditions merges the named conditions with the free-form filter
// pairs into one field/value map. Field names follow the GDC files
// endpoint schema.
func (spec DatasetSpec) QueryConditions() map[string]string {
	conditions := make(map[string]string, len(spec.Filters)+3)
	for field, value := range spec.Filters {
		conditions[field] = value
	}
	if spec.Project != "" {
		conditions["cases.project.project_id"] = spec.Project
	}
	if spec.DataType != "" {
		conditions["data_type"] = spec.DataType
	}
	if spec.WorkflowType != "" {
		conditions["analysis.workflow_type"] = spec.WorkflowType
	}
	return conditions
}

type XenafileLock struct {
	DataRelease string     `yaml:"data_release"`
	Files       []FileLock `yaml:"files"`
}

func (lock XenafileLock) FindFileWithUUID(uuid string) (FileLock, error) {
	for _, f := range lock.Files {
		if f.UUID == uuid {
			return f, nil
		}
	}
	return FileLock{}, errors.New("not found")
}

func (lock XenafileLock) FilesForDataset(name string) []FileLock {
	var files []FileLock
	for _, f := range lock.Files {
		if f.Dataset == name {
			files = append(files, f)
		}
	}
	return files
}

// SortFiles orders lock entries by dataset then file name then uuid so
// lock rewrites produce stable diffs.
func (lock *XenafileLock) SortFiles() {
	sort.Slice(lock.Files, func(i, j int) bool {
		a, b := lock.Files[i], lock.Files[j]
		if a.Dataset != b.Dataset {
			return a.Dataset < b.Dataset
		}
		if a.FileName != b.FileName {
			return a.FileName < b.FileName
		}
		return a.UUID < b.UUID
	})
}

// FileLock identifies an exact remote file and where it is cached.
//
// All fields must be comparable because this struct may be
// used as a key type in a map. Don't add array or map fields.
type FileLock struct {
	Dataset  string `yaml:"dataset"`
	UUID     string `yaml:"uuid"`
	FileName string `yaml:"file_name"`
	MD5      string `yaml:"md5,omitempty"`
	Size     int64  `yaml:"size,omitempty"`
	Label    string `yaml:"label,omitempty"`

	RemoteSource string `yaml:"remote_source"`
	RemotePath   string `yaml:"remote_path"`
}

func (lock FileLock) WithMD5(sum string) FileLock {
	lock.MD5 = sum
	return lock
}

func (lock FileLock) WithRemote(source, path string) FileLock {
	lock.RemoteSource = source
	lock.RemotePath = path
	return lock
}

func (lock FileLock) WithLabel(label string) FileLock {
	lock.Label = label
	return lock
}
