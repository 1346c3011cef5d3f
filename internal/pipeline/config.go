package pipeline

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where commands look for the pipeline config when
// no flag overrides it.
const DefaultConfigPath = "ci.yml"

// Config models a ci.yml pipeline declaration. Stages run in order; each
// stage without explicit jobs expands into one job per runtime using the
// default phases.
type Config struct {
	Language string   `yaml:"language"`
	Runtimes []string `yaml:"runtimes"`
	Stages   []string `yaml:"stages"`

	BeforeInstall []string `yaml:"before_install,omitempty"`
	Install       []string `yaml:"install,omitempty"`
	Script        []string `yaml:"script,omitempty"`

	Jobs          []JobConfig   `yaml:"jobs,omitempty"`
	AllowFailures []Selector    `yaml:"allow_failures,omitempty"`
	Notifications Notifications `yaml:"notifications,omitempty"`
}

// JobConfig pins a job to a stage and runtime with its own phases. A
// stage with explicit jobs does not get matrix expansion.
type JobConfig struct {
	Name    string `yaml:"name,omitempty"`
	Stage   string `yaml:"stage"`
	Runtime string `yaml:"runtime"`

	BeforeInstall []string `yaml:"before_install,omitempty"`
	Install       []string `yaml:"install,omitempty"`
	Script        []string `yaml:"script"`

	AllowFailure bool `yaml:"allow_failure,omitempty"`
}

// Selector picks jobs by stage and/or runtime for allow_failures. An
// empty selector matches nothing.
type Selector struct {
	Stage   string `yaml:"stage,omitempty"`
	Runtime string `yaml:"runtime,omitempty"`
}

// Matches reports whether the job satisfies every set selector field.
func (selector Selector) Matches(job Job) bool {
	if selector.Stage == "" && selector.Runtime == "" {
		return false
	}
	if selector.Stage != "" && selector.Stage != job.Stage {
		return false
	}
	if selector.Runtime != "" && selector.Runtime != job.Runtime {
		return false
	}
	return true
}

type Notifications struct {
	Email *EmailNotifications `yaml:"email,omitempty"`
}

// EmailEnabled reports whether email notifications are on. They default
// to on when the config does not mention them.
func (notifications Notifications) EmailEnabled() bool {
	if notifications.Email == nil {
		return true
	}
	return notifications.Email.Enabled
}

// EmailNotifications accepts both a bare boolean ("email: false") and a
// mapping with enabled/recipients fields.
type EmailNotifications struct {
	Enabled    bool
	Recipients []string
}

func (email *EmailNotifications) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&email.Enabled)
	case yaml.MappingNode:
		var mapping struct {
			Enabled    bool     `yaml:"enabled"`
			Recipients []string `yaml:"recipients"`
		}
		if err := value.Decode(&mapping); err != nil {
			return err
		}
		email.Enabled = mapping.Enabled
		email.Recipients = mapping.Recipients
		return nil
	default:
		return fmt.Errorf("line %d: email notifications must be a bool or a mapping", value.Line)
	}
}

func (email EmailNotifications) MarshalYAML() (interface{}, error) {
	if len(email.Recipients) == 0 {
		return email.Enabled, nil
	}
	return struct {
		Enabled    bool     `yaml:"enabled"`
		Recipients []string `yaml:"recipients"`
	}{Enabled: email.Enabled, Recipients: email.Recipients}, nil
}

// ParseConfig decodes a pipeline config document.
func ParseConfig(buf []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(buf, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse pipeline config: %w", err)
	}
	return config, nil
}

// LoadConfig reads and decodes the pipeline config at path.
func LoadConfig(fs billy.Basic, path string) (Config, error) {
	fp, err := fs.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open pipeline config: %w", err)
	}
	defer closeAndIgnoreError(fp)

	buf, err := io.ReadAll(fp)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read pipeline config: %w", err)
	}
	return ParseConfig(buf)
}
