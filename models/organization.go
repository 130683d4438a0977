package models

import "time"

// Subscription is the current subscription window of an organization.
// An inactive subscription carries null dates and a null tier; an active
// one always has both dates with EndDate after StartDate.
type Subscription struct {
	Active    bool       `json:"active" dynamodbav:"active"`
	StartDate *time.Time `json:"startDate" dynamodbav:"startDate"`
	EndDate   *time.Time `json:"endDate" dynamodbav:"endDate"`
	Tier      *string    `json:"tier" dynamodbav:"tier"`
}

// Organization represents a registered organization, keyed by its
// business code. OrgCode is immutable once created.
type Organization struct {
	OrgCode         string       `json:"orgCode" dynamodbav:"orgCode" validate:"required"`
	OrgName         string       `json:"orgName" dynamodbav:"orgName" validate:"required"`
	Owner           string       `json:"owner" dynamodbav:"owner" validate:"required"`
	Phone           string       `json:"phone" dynamodbav:"phone" validate:"required"`
	Email           string       `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,email"`
	UDC             string       `json:"udc,omitempty" dynamodbav:"udc,omitempty"`
	Subscription    Subscription `json:"subscription" dynamodbav:"subscription"`
	ContinueEnabled bool         `json:"continueEnabled" dynamodbav:"continueEnabled"`
	CreatedAt       time.Time    `json:"createdAt" dynamodbav:"createdAt"`
}

// SubscriptionExpired reports whether the organization holds an active
// subscription whose window has already closed.
func (o *Organization) SubscriptionExpired(now time.Time) bool {
	return o.Subscription.Active && o.Subscription.EndDate != nil && o.Subscription.EndDate.Before(now)
}
