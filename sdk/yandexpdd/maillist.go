// sdk/yandexpdd/maillist.go
package yandexpdd

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-yandexpdd/httpclient"
)

const (
	endpointMlAdd                = "email/ml/add"
	endpointMlList               = "email/ml/list"
	endpointMlDel                = "email/ml/del"
	endpointMlSubscribe          = "email/ml/subscribe"
	endpointMlSubscribers        = "email/ml/subscribers"
	endpointMlUnsubscribe        = "email/ml/unsubscribe"
	endpointMlGetCanSendOnBehalf = "email/ml/get_can_send_on_behalf"
	endpointMlSetCanSendOnBehalf = "email/ml/set_can_send_on_behalf"
)

// MaillistRef identifies a mail list by address or uid.
type MaillistRef struct {
	Maillist string
	UID      int64
}

// SubscriberRef identifies a mail list subscriber by address or uid.
type SubscriberRef struct {
	Subscriber string
	UID        int64
}

func (r MaillistRef) validate(operation string) error {
	return requireNameOrUID(operation, "maillist", r.Maillist, "maillist_uid", r.UID)
}

func (r SubscriberRef) validate(operation string) error {
	return requireNameOrUID(operation, "subscriber", r.Subscriber, "subscriber_uid", r.UID)
}

func maillistParams(ml MaillistRef, sub *SubscriberRef) httpclient.Params {
	params := httpclient.Params{
		"maillist":     optional(ml.Maillist),
		"maillist_uid": optional(ml.UID),
	}
	if sub != nil {
		params["subscriber"] = optional(sub.Subscriber)
		params["subscriber_uid"] = optional(sub.UID)
	}
	return params
}

func validatePair(operation string, ml MaillistRef, sub SubscriberRef) error {
	if err := ml.validate(operation); err != nil {
		return err
	}
	return sub.validate(operation)
}

// EmailMlAdd creates a mail list and returns its uid.
func (c *Client) EmailMlAdd(ctx context.Context, maillist string) (any, error) {
	return c.post(ctx, endpointMlAdd, httpclient.Params{"maillist": optional(maillist)}, httpclient.ProjectField("uid"))
}

// EmailMlList returns the mail lists of the domain.
func (c *Client) EmailMlList(ctx context.Context) (any, error) {
	return c.get(ctx, endpointMlList, nil, httpclient.ProjectField("maillists"))
}

// EmailMlDel deletes a mail list.
func (c *Client) EmailMlDel(ctx context.Context, ml MaillistRef) (any, error) {
	if err := ml.validate(endpointMlDel); err != nil {
		return nil, err
	}
	return c.post(ctx, endpointMlDel, maillistParams(ml, nil), httpclient.ProjectConstant(true))
}

// EmailMlSubscribe adds a subscriber. canSendOnBehalf is omitted when nil.
func (c *Client) EmailMlSubscribe(ctx context.Context, ml MaillistRef, sub SubscriberRef, canSendOnBehalf *bool) (any, error) {
	if err := validatePair(endpointMlSubscribe, ml, sub); err != nil {
		return nil, err
	}
	params := maillistParams(ml, &sub)
	params["can_send_on_behalf"] = canSendOnBehalf
	return c.post(ctx, endpointMlSubscribe, params, httpclient.ProjectConstant(true))
}

// EmailMlSubscribers returns the subscriber addresses of a mail list.
func (c *Client) EmailMlSubscribers(ctx context.Context, ml MaillistRef) (any, error) {
	if err := ml.validate(endpointMlSubscribers); err != nil {
		return nil, err
	}
	return c.get(ctx, endpointMlSubscribers, maillistParams(ml, nil), httpclient.ProjectField("subscribers"))
}

// EmailMlUnsubscribe removes a subscriber.
func (c *Client) EmailMlUnsubscribe(ctx context.Context, ml MaillistRef, sub SubscriberRef) (any, error) {
	if err := validatePair(endpointMlUnsubscribe, ml, sub); err != nil {
		return nil, err
	}
	return c.post(ctx, endpointMlUnsubscribe, maillistParams(ml, &sub), httpclient.ProjectConstant(true))
}

// EmailMlGetCanSendOnBehalf reports whether a subscriber may send mail as the list.
func (c *Client) EmailMlGetCanSendOnBehalf(ctx context.Context, ml MaillistRef, sub SubscriberRef) (any, error) {
	if err := validatePair(endpointMlGetCanSendOnBehalf, ml, sub); err != nil {
		return nil, err
	}
	return c.get(ctx, endpointMlGetCanSendOnBehalf, maillistParams(ml, &sub), httpclient.ProjectField("can_send_on_behalf"))
}

// EmailMlSetCanSendOnBehalf allows or forbids a subscriber to send mail as the list.
func (c *Client) EmailMlSetCanSendOnBehalf(ctx context.Context, ml MaillistRef, sub SubscriberRef, canSendOnBehalf *bool) (any, error) {
	if err := validatePair(endpointMlSetCanSendOnBehalf, ml, sub); err != nil {
		return nil, err
	}
	params := maillistParams(ml, &sub)
	params["can_send_on_behalf"] = canSendOnBehalf
	return c.post(ctx, endpointMlSetCanSendOnBehalf, params, httpclient.ProjectConstant(true))
}

// Short aliases.

func (c *Client) MlAdd(ctx context.Context, maillist string) (any, error) {
	return c.EmailMlAdd(ctx, maillist)
}

func (c *Client) MlList(ctx context.Context) (any, error) {
	return c.EmailMlList(ctx)
}

func (c *Client) MlDel(ctx context.Context, ml MaillistRef) (any, error) {
	return c.EmailMlDel(ctx, ml)
}

func (c *Client) MlSubscribe(ctx context.Context, ml MaillistRef, sub SubscriberRef, canSendOnBehalf *bool) (any, error) {
	return c.EmailMlSubscribe(ctx, ml, sub, canSendOnBehalf)
}

func (c *Client) MlSubscribers(ctx context.Context, ml MaillistRef) (any, error) {
	return c.EmailMlSubscribers(ctx, ml)
}

func (c *Client) MlUnsubscribe(ctx context.Context, ml MaillistRef, sub SubscriberRef) (any, error) {
	return c.EmailMlUnsubscribe(ctx, ml, sub)
}

func (c *Client) MlSendGet(ctx context.Context, ml MaillistRef, sub SubscriberRef) (any, error) {
	return c.EmailMlGetCanSendOnBehalf(ctx, ml, sub)
}

func (c *Client) MlSendSet(ctx context.Context, ml MaillistRef, sub SubscriberRef, canSendOnBehalf *bool) (any, error) {
	return c.EmailMlSetCanSendOnBehalf(ctx, ml, sub, canSendOnBehalf)
}
