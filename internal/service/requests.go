package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

const dateLayout = "2006-01-02"

// SubscriptionInput is the body of create and full-update requests.
type SubscriptionInput struct {
	ServiceName       string              `json:"serviceName" validate:"required,min=1,max=50"`
	Amount            int64               `json:"amount" validate:"gte=0,lte=9999999"`
	BillingCycle      domain.BillingCycle `json:"billingCycle" validate:"required,billing_cycle"`
	Currency          string              `json:"currency" validate:"omitempty,len=3"`
	NextBillingDate   string              `json:"nextBillingDate" validate:"required,datetime=2006-01-02"`
	AutoRenew         *bool               `json:"autoRenew"`
	SatisfactionScore *int                `json:"satisfactionScore" validate:"omitempty,min=1,max=5"`
	CategoryID        *uuid.UUID          `json:"categoryId"`
	Note              *string             `json:"note" validate:"omitempty,max=500"`
	ServiceURL        *string             `json:"serviceUrl" validate:"omitempty,url,max=255"`
	StartDate         string              `json:"startDate" validate:"required,datetime=2006-01-02"`
}

type ChangeStatusRequest struct {
	Status domain.SubscriptionStatus `json:"status" validate:"required,oneof=active paused cancelled"`
}

type CreateCategoryRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=50"`
	Color     *string `json:"color" validate:"omitempty,len=7,hexcolor"`
	SortOrder int     `json:"sortOrder" validate:"gte=0"`
}

// IDList is a list of subscription ids for simulations. Entries that are not
// uuids are dropped while decoding, the same as ids the user does not own.
type IDList []uuid.UUID

func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*l = nil
		return nil
	}

	ids := make(IDList, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			continue
		}
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	*l = ids
	return nil
}

type CancelSimulationRequest struct {
	SubscriptionIDs IDList `json:"subscriptionIds"`
}

type AddSimulationRequest struct {
	ServiceName  string              `json:"serviceName" validate:"required,min=1,max=50"`
	Amount       int64               `json:"amount" validate:"gt=0,lte=9999999"`
	BillingCycle domain.BillingCycle `json:"billingCycle" validate:"required,billing_cycle"`
	CategoryID   *uuid.UUID          `json:"categoryId"`
}

func (r AddSimulationRequest) item() domain.VirtualItem {
	return domain.VirtualItem{
		ServiceName:  r.ServiceName,
		Amount:       r.Amount,
		BillingCycle: r.BillingCycle,
		CategoryID:   r.CategoryID,
	}
}

type CombinedSimulationRequest struct {
	CancelSubscriptionIDs IDList                 `json:"cancelSubscriptionIds"`
	AddItems              []AddSimulationRequest `json:"addItems" validate:"dive"`
}

const ApplyActionCancel = "cancel"

type ApplySimulationRequest struct {
	Action          string      `json:"action" validate:"required,oneof=cancel"`
	SubscriptionIDs []uuid.UUID `json:"subscriptionIds" validate:"required,min=1"`
}
