package models

import "time"

// RequestStatus represents the lifecycle status of a subscription request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Terminal reports whether no further transition is permitted.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// SubscriptionRequest is one entry in the append-only request ledger.
// The org fields are a snapshot of requester-supplied data, not a live
// reference: a request may name an organization that does not exist yet.
type SubscriptionRequest struct {
	ID            string        `json:"id" dynamodbav:"id"`
	OrgCode       string        `json:"orgCode" dynamodbav:"orgCode" validate:"required"`
	OrgName       string        `json:"orgName" dynamodbav:"orgName" validate:"required"`
	Owner         string        `json:"owner" dynamodbav:"owner" validate:"required"`
	Phone         string        `json:"phone" dynamodbav:"phone" validate:"required"`
	Email         string        `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,email"`
	SelectedTier  int           `json:"selectedTier" dynamodbav:"selectedTier" validate:"gte=0"`
	SelectedPrice float64       `json:"selectedPrice" dynamodbav:"selectedPrice" validate:"gte=0"`
	Status        RequestStatus `json:"status" dynamodbav:"status"`
	Timestamp     time.Time     `json:"timestamp" dynamodbav:"timestamp"`
	ApprovedAt    *time.Time    `json:"approvedAt,omitempty" dynamodbav:"approvedAt,omitempty"`
	RejectedAt    *time.Time    `json:"rejectedAt,omitempty" dynamodbav:"rejectedAt,omitempty"`
}

// SubmitRequestInput is the inbound payload for the public submit
// endpoint. SelectedTier is a pointer so that an absent field can be told
// apart from an explicit trial (0).
type SubmitRequestInput struct {
	OrgCode       string  `json:"orgCode" validate:"required"`
	OrgName       string  `json:"orgName" validate:"required"`
	Owner         string  `json:"owner" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	Email         string  `json:"email,omitempty" validate:"omitempty,email"`
	SelectedTier  *int    `json:"selectedTier" validate:"required,gte=0"`
	SelectedPrice float64 `json:"selectedPrice" validate:"gte=0"`
}
