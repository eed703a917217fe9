// sdk/yandexpdd/domain.go
package yandexpdd

import (
	"context"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/httpclient"
)

const (
	endpointDomainList               = "domain/domains"
	endpointDomainRegister           = "domain/register"
	endpointDomainRegistrationStatus = "domain/registration_status"
	endpointDomainDetails            = "domain/details"
	endpointDomainDelete             = "domain/delete"
	endpointDomainSetCountry         = "domain/settings/set_country"

	defaultDomainsOnPage = 30
	domainsListAllOnPage = 100
)

// DomainList returns one page of the domains owned by the token holder. page and onPage default to 1 and 30.
func (c *Client) DomainList(ctx context.Context, page, onPage int) (any, error) {
	return c.get(ctx, endpointDomainList, pageParams(page, onPage, defaultDomainsOnPage), httpclient.ProjectFull())
}

// DomainListAll collects the domains of every page. It stops once the collected count reaches the
// reported total, or on a page with no domains. Any failing page aborts the collection.
func (c *Client) DomainListAll(ctx context.Context) ([]any, error) {
	var domains []any
	for page := 1; ; page++ {
		env, err := c.api.Do(ctx, endpointDomainList, pageParams(page, domainsListAllOnPage, defaultDomainsOnPage), http.MethodGet)
		if err != nil {
			return nil, err
		}

		batch, err := env.List("domains")
		if err != nil {
			return nil, listDecodeError(endpointDomainList, err)
		}
		domains = append(domains, batch...)

		total, err := env.Int("total")
		if err != nil {
			return nil, listDecodeError(endpointDomainList, err)
		}
		if len(domains) >= total || len(batch) == 0 {
			return domains, nil
		}
	}
}

// DomainRegister registers the configured domain with the service.
func (c *Client) DomainRegister(ctx context.Context) (any, error) {
	return c.post(ctx, endpointDomainRegister, nil, httpclient.ProjectFull())
}

// DomainRegistrationStatus returns the status string: domain-activate, mx-activate or added.
func (c *Client) DomainRegistrationStatus(ctx context.Context) (any, error) {
	return c.get(ctx, endpointDomainRegistrationStatus, nil, httpclient.ProjectField("status"))
}

// DomainDetails returns the full domain description.
func (c *Client) DomainDetails(ctx context.Context) (any, error) {
	return c.get(ctx, endpointDomainDetails, nil, httpclient.ProjectFull())
}

// DomainDelete removes the configured domain.
func (c *Client) DomainDelete(ctx context.Context) (any, error) {
	return c.post(ctx, endpointDomainDelete, nil, httpclient.ProjectConstant(true))
}

// DomainSettingsSetCountry sets the domain country, an ISO 3166-1 code.
func (c *Client) DomainSettingsSetCountry(ctx context.Context, country string) (any, error) {
	return c.post(ctx, endpointDomainSetCountry, httpclient.Params{"country": optional(country)}, httpclient.ProjectConstant(true))
}
