package gh

import (
	"context"
	"errors"

	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

// Client creates a GitHub client for github.com authenticated with the
// given access token.
func Client(ctx context.Context, accessToken string) (*github.Client, error) {
	if accessToken == "" {
		return nil, errors.New("github access token is absent")
	}
	tokenClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	return github.NewClient(tokenClient), nil
}
