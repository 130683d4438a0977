package models

// Dataset is the full persisted state: both collections written and read
// together as one logical unit. Revision is the optimistic-concurrency
// token handed out by the store on Load; Save rejects a dataset whose
// revision no longer matches the stored one. It is never part of the
// exported JSON document.
type Dataset struct {
	Organizations []*Organization        `json:"organizations"`
	Requests      []*SubscriptionRequest `json:"requests"`
	Revision      int64                  `json:"-"`
}

// NewDataset returns the empty-but-valid first-run state.
func NewDataset() *Dataset {
	return &Dataset{
		Organizations: []*Organization{},
		Requests:      []*SubscriptionRequest{},
	}
}

// FindOrganization returns the organization with the given code, or nil.
// Matching is case-sensitive exact match.
func (d *Dataset) FindOrganization(orgCode string) *Organization {
	for _, org := range d.Organizations {
		if org.OrgCode == orgCode {
			return org
		}
	}
	return nil
}

// FindRequest returns the request with the given id, or nil.
func (d *Dataset) FindRequest(id string) *SubscriptionRequest {
	for _, req := range d.Requests {
		if req.ID == id {
			return req
		}
	}
	return nil
}
