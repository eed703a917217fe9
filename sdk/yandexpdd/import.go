// sdk/yandexpdd/import.go
package yandexpdd

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/httpclient"
)

const (
	endpointImportCheckSettings  = "import/check_settings"
	endpointImportStartOneImport = "import/start_one_import"
	endpointImportCheckImports   = "import/check_imports"
	endpointImportStopAllImports = "import/stop_all_imports"

	DefaultImportMethod = "imap"
	DefaultImportServer = "imap.yandex.ru"
	DefaultImportPort   = 993

	defaultImportsOnPage = 10
)

// ImportSettings describes the external mail server an import reads from. Method is one of imap,
// imap4, pop or pop3. Zero fields take the defaults: imap on imap.yandex.ru:993 over SSL.
type ImportSettings struct {
	Method string
	Server string
	Port   int
	SSL    *bool
}

// ImportRequest is a single mailbox import. The internal credentials are optional.
type ImportRequest struct {
	ImportSettings
	ExtLogin  string
	ExtPasswd string
	IntLogin  string
	IntPasswd string
}

func (s ImportSettings) params() httpclient.Params {
	params := httpclient.Params{
		"method": s.Method,
		"server": s.Server,
		"port":   s.Port,
		"ssl":    true,
	}
	if s.Method == "" {
		params["method"] = DefaultImportMethod
	}
	if s.Server == "" {
		params["server"] = DefaultImportServer
	}
	if s.Port == 0 {
		params["port"] = DefaultImportPort
	}
	if s.SSL != nil {
		params["ssl"] = *s.SSL
	}
	return params
}

// params maps the credentials onto their hyphenated wire names.
func (r ImportRequest) params() httpclient.Params {
	params := r.ImportSettings.params()
	params["ext-login"] = optional(r.ExtLogin)
	params["ext-passwd"] = optional(r.ExtPasswd)
	params["int-login"] = optional(r.IntLogin)
	params["int-passwd"] = optional(r.IntPasswd)
	return params
}

// ImportCheckSettings asks the service whether it can reach the external server.
func (c *Client) ImportCheckSettings(ctx context.Context, settings ImportSettings) (any, error) {
	return c.get(ctx, endpointImportCheckSettings, settings.params(), httpclient.ProjectConstant(true))
}

// ImportStartOneImport starts importing one external mailbox.
func (c *Client) ImportStartOneImport(ctx context.Context, req ImportRequest) (any, error) {
	return c.post(ctx, endpointImportStartOneImport, req.params(), httpclient.ProjectConstant(true))
}

// ImportCheckImports returns one page of import states. page and onPage default to 1 and 10.
func (c *Client) ImportCheckImports(ctx context.Context, page, onPage int) (any, error) {
	return c.get(ctx, endpointImportCheckImports, pageParams(page, onPage, defaultImportsOnPage), httpclient.ProjectField("import"))
}

// ImportStopAllImports cancels every running import of the domain.
func (c *Client) ImportStopAllImports(ctx context.Context) (any, error) {
	return c.post(ctx, endpointImportStopAllImports, nil, httpclient.ProjectConstant(true))
}
