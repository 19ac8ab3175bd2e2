package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

func validInput() SubscriptionInput {
	return SubscriptionInput{
		ServiceName:     "Netflix",
		Amount:          17000,
		BillingCycle:    domain.BillingCycleMonthly,
		NextBillingDate: "2026-04-01",
		StartDate:       "2025-01-01",
	}
}

func TestCreateSubscription(t *testing.T) {
	subs := newFakeSubs()
	svc := NewSubscriptionService(subs, newFakeCats(), discardLogger())
	user := uuid.New()

	id, err := svc.Create(context.Background(), user, validInput())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.GetByID(context.Background(), user, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != domain.StatusActive || got.Currency != domain.DefaultCurrency || !got.AutoRenew {
		t.Errorf("defaults not applied: %+v", got.Subscription)
	}
	if got.MonthlyAmount != 17000 || got.AnnualAmount != 204000 {
		t.Errorf("derived amounts = %d/%d", got.MonthlyAmount, got.AnnualAmount)
	}

	if _, err := svc.Create(context.Background(), user, validInput()); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("duplicate Create() error = %v, want ErrAlreadyExists", err)
	}
}

func TestCreateSubscriptionValidation(t *testing.T) {
	user := uuid.New()
	foreignCat := uuid.New()
	other := uuid.New()
	svc := NewSubscriptionService(newFakeSubs(), newFakeCats(domain.Category{ID: foreignCat, UserID: &other, Name: "Theirs"}), discardLogger())

	score := 7
	longNote := string(make([]byte, 501))
	tests := []struct {
		name   string
		mutate func(*SubscriptionInput)
		field  string
	}{
		{"negative amount", func(in *SubscriptionInput) { in.Amount = -1 }, "amount"},
		{"amount above cap", func(in *SubscriptionInput) { in.Amount = domain.MaxAmount + 1 }, "amount"},
		{"bad cycle", func(in *SubscriptionInput) { in.BillingCycle = "daily" }, "billingCycle"},
		{"blank name", func(in *SubscriptionInput) { in.ServiceName = "   " }, "serviceName"},
		{"score out of range", func(in *SubscriptionInput) { in.SatisfactionScore = &score }, "satisfactionScore"},
		{"long note", func(in *SubscriptionInput) { in.Note = &longNote }, "note"},
		{"bad date", func(in *SubscriptionInput) { in.StartDate = "01-2025" }, "startDate"},
		{"foreign category", func(in *SubscriptionInput) { in.CategoryID = &foreignCat }, "categoryId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), user, in)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("Create() error = %v, want validation error on %s", err, tt.field)
			}
		})
	}
}

func TestChangeStatus(t *testing.T) {
	user := uuid.New()
	id := uuid.New()
	subs := newFakeSubs(domain.Subscription{ID: id, UserID: user, ServiceName: "S", Status: domain.StatusActive, BillingCycle: domain.BillingCycleMonthly})
	svc := NewSubscriptionService(subs, newFakeCats(), discardLogger())
	ctx := context.Background()

	steps := []struct {
		to      domain.SubscriptionStatus
		wantErr error
	}{
		{domain.StatusPaused, nil},
		{domain.StatusActive, nil},
		{domain.StatusCancelled, nil},
		{domain.StatusActive, domain.ErrInvalidTransition},
		{domain.StatusPaused, domain.ErrInvalidTransition},
	}

	for _, step := range steps {
		err := svc.ChangeStatus(ctx, user, id, ChangeStatusRequest{Status: step.to})
		if !errors.Is(err, step.wantErr) {
			t.Fatalf("ChangeStatus(%s) error = %v, want %v", step.to, err, step.wantErr)
		}
	}

	if err := svc.ChangeStatus(ctx, uuid.New(), id, ChangeStatusRequest{Status: domain.StatusPaused}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("foreign ChangeStatus() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateKeepsStatus(t *testing.T) {
	user := uuid.New()
	id := uuid.New()
	subs := newFakeSubs(domain.Subscription{ID: id, UserID: user, ServiceName: "Netflix", Status: domain.StatusPaused, BillingCycle: domain.BillingCycleMonthly})
	svc := NewSubscriptionService(subs, newFakeCats(), discardLogger())

	in := validInput()
	in.Amount = 9900
	if err := svc.Update(context.Background(), user, id, in); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := svc.GetByID(context.Background(), user, id)
	if got.Amount != 9900 || got.Status != domain.StatusPaused {
		t.Errorf("after update = %+v", got.Subscription)
	}
}

func TestCategoryDeleteRules(t *testing.T) {
	user := uuid.New()
	system := domain.Category{ID: uuid.New(), Name: "OTT", IsSystem: true}
	own := domain.Category{ID: uuid.New(), Name: "Mine", UserID: &user}
	svc := NewCategoryService(newFakeCats(system, own), discardLogger())
	ctx := context.Background()

	if err := svc.Delete(ctx, user, system.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Delete(system) error = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, uuid.New(), own.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete(foreign) error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, user, own.ID); err != nil {
		t.Errorf("Delete(own) error = %v", err)
	}

	cats, err := svc.List(ctx, user)
	if err != nil || len(cats) != 1 || !cats[0].IsSystem {
		t.Errorf("List() = %+v, %v", cats, err)
	}
}

func TestCategoryCreateValidation(t *testing.T) {
	svc := NewCategoryService(newFakeCats(), discardLogger())
	bad := "red"

	_, err := svc.Create(context.Background(), uuid.New(), CreateCategoryRequest{Name: "X", Color: &bad})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "color" {
		t.Errorf("Create() error = %v, want validation error on color", err)
	}
}
