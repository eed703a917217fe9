// sdk/yandexpdd/dns.go
package yandexpdd

import (
	"context"

	pdderrors "github.com/deploymenttheory/go-api-sdk-yandexpdd/errors"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/httpclient"
)

const (
	endpointDNSAdd  = "dns/add"
	endpointDNSList = "dns/list"
	endpointDNSEdit = "dns/edit"
	endpointDNSDel  = "dns/del"
)

// DNSRecordRequest carries the fields of a DNS record. Type is one of SRV, TXT, NS, MX, SOA, A, AAAA
// or CNAME and is required when adding. Nil numeric fields are not sent.
type DNSRecordRequest struct {
	Type      string
	AdminMail string
	Content   string
	Priority  *int
	Weight    *int
	Port      *int
	Target    string
	Subdomain string
	TTL       *int
}

func (r DNSRecordRequest) params() httpclient.Params {
	return httpclient.Params{
		"type":       optional(r.Type),
		"admin_mail": optional(r.AdminMail),
		"content":    optional(r.Content),
		"priority":   r.Priority,
		"weight":     r.Weight,
		"port":       r.Port,
		"target":     optional(r.Target),
		"subdomain":  optional(r.Subdomain),
		"ttl":        r.TTL,
	}
}

// DNSAdd creates a record and returns it as stored by the service.
func (c *Client) DNSAdd(ctx context.Context, record DNSRecordRequest) (any, error) {
	if record.Type == "" {
		return nil, pdderrors.NewMissingParameterError(endpointDNSAdd, "type")
	}
	return c.post(ctx, endpointDNSAdd, record.params(), httpclient.ProjectField("record"))
}

// DNSList returns every record of the domain.
func (c *Client) DNSList(ctx context.Context) (any, error) {
	return c.get(ctx, endpointDNSList, nil, httpclient.ProjectField("records"))
}

// DNSEdit updates the record recordID with the non-empty fields of record.
func (c *Client) DNSEdit(ctx context.Context, recordID int64, record DNSRecordRequest) (any, error) {
	params := record.params()
	params["record_id"] = recordID
	return c.post(ctx, endpointDNSEdit, params, httpclient.ProjectConstant(true))
}

// DNSDel removes the record recordID.
func (c *Client) DNSDel(ctx context.Context, recordID int64) (any, error) {
	return c.post(ctx, endpointDNSDel, httpclient.Params{"record_id": recordID}, httpclient.ProjectConstant(true))
}
