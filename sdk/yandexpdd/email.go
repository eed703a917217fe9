// sdk/yandexpdd/email.go
package yandexpdd

import (
	"context"
	"net/http"
	"time"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/httpclient"
)

const (
	endpointEmailAdd           = "email/add"
	endpointEmailList          = "email/list"
	endpointEmailEdit          = "email/edit"
	endpointEmailDel           = "email/del"
	endpointEmailCounters      = "email/counters"
	endpointEmailGetOAuthToken = "email/get_oauth_token"

	defaultEmailsOnPage = 30
	emailListAllOnPage  = 100
)

// EmailEditRequest holds the mailbox attributes email/edit can change. Login or UID identifies the
// mailbox. Zero strings and nil pointers are left out of the request.
type EmailEditRequest struct {
	Login     string
	UID       int64
	Password  string
	Iname     string // first name
	Fname     string // last name
	Enabled   *bool
	BirthDate *time.Time
	Sex       *int // 0 not set, 1 male, 2 female
	Hintq     string
	Hinta     string
}

func (r EmailEditRequest) params() httpclient.Params {
	params := httpclient.Params{
		"login":    optional(r.Login),
		"uid":      optional(r.UID),
		"password": optional(r.Password),
		"iname":    optional(r.Iname),
		"fname":    optional(r.Fname),
		"hintq":    optional(r.Hintq),
		"hinta":    optional(r.Hinta),
	}
	if r.Enabled != nil {
		params["enabled"] = *r.Enabled
	}
	if r.BirthDate != nil {
		params["birth_date"] = *r.BirthDate
	}
	if r.Sex != nil {
		params["sex"] = *r.Sex
	}
	return params
}

// EmailAdd creates a mailbox and returns its uid.
func (c *Client) EmailAdd(ctx context.Context, login, password string) (any, error) {
	params := httpclient.Params{"login": optional(login), "password": optional(password)}
	return c.post(ctx, endpointEmailAdd, params, httpclient.ProjectField("uid"))
}

// EmailList returns one page of mailboxes. page and onPage default to 1 and 30.
func (c *Client) EmailList(ctx context.Context, page, onPage int) (any, error) {
	return c.get(ctx, endpointEmailList, pageParams(page, onPage, defaultEmailsOnPage), httpclient.ProjectFull())
}

// EmailListAll collects the accounts of every page, 100 per page. The page total is read from the first
// response and fetching continues while the page counter has not passed it, so a total of N pages
// results in N+1 requests. Any failing page aborts the collection.
func (c *Client) EmailListAll(ctx context.Context) ([]any, error) {
	var accounts []any
	pages := -1
	for page := 1; ; page++ {
		env, err := c.api.Do(ctx, endpointEmailList, pageParams(page, emailListAllOnPage, defaultEmailsOnPage), http.MethodGet)
		if err != nil {
			return nil, err
		}

		if pages < 0 {
			if pages, err = env.Int("pages"); err != nil {
				return nil, listDecodeError(endpointEmailList, err)
			}
		}

		batch, err := env.List("accounts")
		if err != nil {
			return nil, listDecodeError(endpointEmailList, err)
		}
		accounts = append(accounts, batch...)

		if page > pages {
			return accounts, nil
		}
	}
}

// EmailEdit changes mailbox attributes. Enabled is sent as yes/no and BirthDate as YYYY-MM-DD.
func (c *Client) EmailEdit(ctx context.Context, req EmailEditRequest) (any, error) {
	if err := requireNameOrUID(endpointEmailEdit, "login", req.Login, "uid", req.UID); err != nil {
		return nil, err
	}
	return c.post(ctx, endpointEmailEdit, req.params(), httpclient.ProjectConstant(true))
}

// EmailDel deletes a mailbox identified by login or uid.
func (c *Client) EmailDel(ctx context.Context, login string, uid int64) (any, error) {
	if err := requireNameOrUID(endpointEmailDel, "login", login, "uid", uid); err != nil {
		return nil, err
	}
	return c.post(ctx, endpointEmailDel, loginOrUID(login, uid), httpclient.ProjectConstant(true))
}

// EmailCounters returns the unread and new message counters of a mailbox.
func (c *Client) EmailCounters(ctx context.Context, login string, uid int64) (any, error) {
	if err := requireNameOrUID(endpointEmailCounters, "login", login, "uid", uid); err != nil {
		return nil, err
	}
	return c.get(ctx, endpointEmailCounters, loginOrUID(login, uid), httpclient.ProjectField("counters"))
}

// EmailGetOAuthToken returns a short lived OAuth token for a mailbox, usable with PassportOAuth.
func (c *Client) EmailGetOAuthToken(ctx context.Context, login string, uid int64) (any, error) {
	if err := requireNameOrUID(endpointEmailGetOAuthToken, "login", login, "uid", uid); err != nil {
		return nil, err
	}
	return c.post(ctx, endpointEmailGetOAuthToken, loginOrUID(login, uid), httpclient.ProjectField(oauthTokenField))
}

func loginOrUID(login string, uid int64) httpclient.Params {
	return httpclient.Params{"login": optional(login), "uid": optional(uid)}
}
