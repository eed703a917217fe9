// sdk/yandexpdd/oauth.go
package yandexpdd

import (
	"context"
	"fmt"
	"net/http"

	pdderrors "github.com/deploymenttheory/go-api-sdk-yandexpdd/errors"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/httpclient"
)

const (
	oauthTokenField = "oauth-token"

	passportOAuthURL = "https://passport.yandex.ru/passport?mode=oauth&access_token=%s&type=trusted-pdd-partner&retpath=%s"

	operationPassportOAuth = "passport_oauth"
)

// PassportOAuth returns the passport link that signs a mailbox user in and redirects to retpath.
// When accessToken is empty a token is first fetched for the mailbox email. Both values are
// substituted as given, without escaping.
func (c *Client) PassportOAuth(ctx context.Context, retpath, accessToken, email string) (string, error) {
	if accessToken == "" {
		if email == "" {
			return "", pdderrors.NewMissingParameterError(operationPassportOAuth, "access_token", "email")
		}

		token, err := c.fetchOAuthToken(ctx, email)
		if err != nil {
			return "", err
		}
		accessToken = token
	}

	return fmt.Sprintf(passportOAuthURL, accessToken, retpath), nil
}

// fetchOAuthToken reads the token field directly so the full-envelope setting cannot leak an
// envelope into the link.
func (c *Client) fetchOAuthToken(ctx context.Context, login string) (string, error) {
	env, err := c.api.Do(ctx, endpointEmailGetOAuthToken, httpclient.Params{"login": login}, http.MethodPost)
	if err != nil {
		return "", err
	}

	value, err := httpclient.ProjectField(oauthTokenField).Apply(endpointEmailGetOAuthToken, env)
	if err != nil {
		return "", err
	}
	if token, ok := value.(string); ok {
		return token, nil
	}
	return fmt.Sprint(value), nil
}
