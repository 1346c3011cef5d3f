package gh

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

var sshRepoExp = regexp.MustCompile(`(?m)git@(?P<host>.*):(?P<owner>[^/]+)/(?P<name>.*)\.git`)

// OwnerAndRepoFromURI parses the repository owner and name from a GitHub
// URI. The owner and name are always the first two path segments, so
// deeper paths such as release asset download URLs also parse.
func OwnerAndRepoFromURI(urlStr string) (owner, repo string, err error) {
	wrapError := func(urlStr string, err error) error {
		return fmt.Errorf("failed to parse owner and repo name from URI %q: %w", urlStr, err)
	}

	if m := sshRepoExp.FindStringSubmatch(urlStr); m != nil {
		owner = m[sshRepoExp.SubexpIndex("owner")]
		repo = m[sshRepoExp.SubexpIndex("name")]
		return owner, repo, nil
	}
	if strings.HasPrefix(urlStr, "git@") {
		return "", "", wrapError(urlStr, errors.New("path missing expected parts"))
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return "", "", wrapError(urlStr, err)
	}
	if filepath.Ext(u.Path) == ".git" {
		u.Path = strings.TrimSuffix(u.Path, ".git")
	}
	owner, rest, found := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	if found {
		repo, _, _ = strings.Cut(rest, "/")
	}
	if owner == "" || repo == "" {
		return owner, repo, wrapError(urlStr, errors.New("path missing expected parts"))
	}
	return owner, repo, nil
}
