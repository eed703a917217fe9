// sdk/yandexpdd/models.go
package yandexpdd

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Account is one mailbox as returned by email/list.
type Account struct {
	Login     string      `json:"login"`
	UID       json.Number `json:"uid"`
	Enabled   string      `json:"enabled"`
	FIO       string      `json:"fio,omitempty"`
	Fname     string      `json:"fname,omitempty"`
	Iname     string      `json:"iname,omitempty"`
	BirthDate string      `json:"birth_date,omitempty"`
	Sex       json.Number `json:"sex,omitempty"`
	Hintq     string      `json:"hintq,omitempty"`
	Ready     string      `json:"ready,omitempty"`
	Maillist  string      `json:"maillist,omitempty"`
	Aliases   []string    `json:"aliases,omitempty"`
}

// Domain is one entry of domain/domains.
type Domain struct {
	Name        string   `json:"name"`
	Status      string   `json:"status,omitempty"`
	Stage       string   `json:"stage,omitempty"`
	Delegated   string   `json:"delegated,omitempty"`
	NoMX        bool     `json:"nomx,omitempty"`
	Country     string   `json:"country,omitempty"`
	LogoURL     string   `json:"logo_url,omitempty"`
	LogoEnabled bool     `json:"logo_enabled,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	MasterAdmin string   `json:"master_admin,omitempty"`
}

// Maillist is one entry of email/ml/list.
type Maillist struct {
	Maillist string      `json:"maillist"`
	UID      json.Number `json:"uid"`
	Count    json.Number `json:"cnt,omitempty"`
}

// Subscriber is the address of a mail list member.
type Subscriber string

// Deputy is the login of a domain co-administrator.
type Deputy string

// Counters are the message counters of email/counters.
type Counters struct {
	Unread json.Number `json:"unread"`
	New    json.Number `json:"new"`
}

// DNSRecord is one record of dns/list or the record returned by dns/add.
type DNSRecord struct {
	RecordID  json.Number `json:"record_id"`
	Type      string      `json:"type"`
	Domain    string      `json:"domain,omitempty"`
	FQDN      string      `json:"fqdn,omitempty"`
	Subdomain string      `json:"subdomain,omitempty"`
	Content   string      `json:"content,omitempty"`
	TTL       json.Number `json:"ttl,omitempty"`
	Priority  json.Number `json:"priority,omitempty"`
	Weight    json.Number `json:"weight,omitempty"`
	Port      json.Number `json:"port,omitempty"`
	Target    string      `json:"target,omitempty"`
	AdminMail string      `json:"admin_mail,omitempty"`
}

// DKIM is the dkim object of the dkim endpoints.
type DKIM struct {
	Enabled   string `json:"enabled"`
	TXTRecord any    `json:"txtrecord,omitempty"`
	SecretKey string `json:"secretkey,omitempty"`
}

// ImportStatus is one entry of import/check_imports.
type ImportStatus struct {
	Login  string `json:"login,omitempty"`
	State  string `json:"state,omitempty"`
	Server string `json:"server,omitempty"`
	Method string `json:"method,omitempty"`
}

// Decode converts a projected result into T by round-tripping it through JSON. Numbers keep their
// precision.
func Decode[T any](value any) (T, error) {
	var out T

	raw, err := json.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("encoding %T: %w", value, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&out); err != nil {
		return out, fmt.Errorf("decoding into %T: %w", out, err)
	}
	return out, nil
}
