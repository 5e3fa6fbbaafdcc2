package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/subhub/internal/config"
	paymentdomain "github.com/smallbiznis/subhub/internal/payment/domain"
	plandomain "github.com/smallbiznis/subhub/internal/plan/domain"
	"github.com/smallbiznis/subhub/internal/shared"
	subdomain "github.com/smallbiznis/subhub/internal/subscription/domain"
	userdomain "github.com/smallbiznis/subhub/internal/user/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePlanService struct {
	createCalls int
	createErr   error
	getErr      error
}

func (f *fakePlanService) Create(ctx context.Context, req plandomain.CreatePlanRequest) (plandomain.Response, error) {
	f.createCalls++
	if f.createErr != nil {
		return plandomain.Response{}, f.createErr
	}
	return plandomain.Response{ID: "p-1", Name: req.Name}, nil
}

func (f *fakePlanService) GetByID(ctx context.Context, id string) (plandomain.Response, error) {
	if f.getErr != nil {
		return plandomain.Response{}, f.getErr
	}
	return plandomain.Response{ID: id}, nil
}

func (f *fakePlanService) List(ctx context.Context) ([]plandomain.Response, error) {
	return nil, nil
}

func (f *fakePlanService) UpdateDetails(ctx context.Context, req plandomain.UpdatePlanDetailsRequest) (plandomain.Response, error) {
	return plandomain.Response{ID: req.PlanID}, nil
}

func (f *fakePlanService) UpdatePrice(ctx context.Context, req plandomain.UpdatePlanPriceRequest) (plandomain.Response, error) {
	return plandomain.Response{ID: req.PlanID}, nil
}

func (f *fakePlanService) ToggleStatus(ctx context.Context, req plandomain.TogglePlanStatusRequest) (plandomain.Response, error) {
	return plandomain.Response{ID: req.PlanID}, nil
}

type fakeUserService struct{}

func (fakeUserService) Create(ctx context.Context, req userdomain.CreateUserRequest) (userdomain.Response, error) {
	return userdomain.Response{ID: "u-1", Email: req.Email}, nil
}

func (fakeUserService) GetByID(ctx context.Context, id string) (userdomain.Response, error) {
	return userdomain.Response{ID: id}, nil
}

func (fakeUserService) List(ctx context.Context) ([]userdomain.Response, error) { return nil, nil }

func (fakeUserService) UpdateProfile(ctx context.Context, req userdomain.UpdateUserProfileRequest) (userdomain.Response, error) {
	return userdomain.Response{ID: req.UserID}, nil
}

func (fakeUserService) ToggleStatus(ctx context.Context, req userdomain.ToggleUserStatusRequest) (userdomain.Response, error) {
	return userdomain.Response{ID: req.UserID}, nil
}

func (fakeUserService) ChangeRole(ctx context.Context, req userdomain.ChangeUserRoleRequest) (userdomain.Response, error) {
	return userdomain.Response{ID: req.UserID}, nil
}

type fakeSubscriptionService struct {
	renewErr  error
	cancelErr error
}

func (f *fakeSubscriptionService) Create(ctx context.Context, req subdomain.CreateSubscriptionRequest) (subdomain.Response, error) {
	return subdomain.Response{ID: "sub-1", UserID: req.UserID, PlanID: req.PlanID, Status: "active"}, nil
}

func (f *fakeSubscriptionService) GetByID(ctx context.Context, id string) (subdomain.Response, error) {
	return subdomain.Response{ID: id}, nil
}

func (f *fakeSubscriptionService) List(ctx context.Context, req subdomain.ListSubscriptionsRequest) ([]subdomain.Response, error) {
	return nil, nil
}

func (f *fakeSubscriptionService) Renew(ctx context.Context, req subdomain.RenewSubscriptionRequest) (subdomain.Response, error) {
	if f.renewErr != nil {
		return subdomain.Response{}, f.renewErr
	}
	return subdomain.Response{ID: req.SubscriptionID, Status: "active"}, nil
}

func (f *fakeSubscriptionService) Pause(ctx context.Context, id string) (subdomain.Response, error) {
	return subdomain.Response{ID: id, Status: "paused"}, nil
}

func (f *fakeSubscriptionService) Resume(ctx context.Context, id string) (subdomain.Response, error) {
	return subdomain.Response{ID: id, Status: "active"}, nil
}

func (f *fakeSubscriptionService) Cancel(ctx context.Context, req subdomain.CancelSubscriptionRequest) (subdomain.Response, error) {
	if f.cancelErr != nil {
		return subdomain.Response{}, f.cancelErr
	}
	return subdomain.Response{ID: req.SubscriptionID, Status: "cancelled"}, nil
}

func (f *fakeSubscriptionService) ChangePlan(ctx context.Context, req subdomain.ChangePlanRequest) (subdomain.Response, error) {
	return subdomain.Response{ID: req.SubscriptionID, PlanID: req.PlanID}, nil
}

type fakePaymentService struct{}

func (fakePaymentService) Charge(ctx context.Context, subscriptionID shared.SubscriptionID, amount shared.Money) (paymentdomain.Response, error) {
	return paymentdomain.Response{}, nil
}

func (fakePaymentService) GetByID(ctx context.Context, id string) (paymentdomain.Response, error) {
	return paymentdomain.Response{ID: id}, nil
}

func (fakePaymentService) ListBySubscription(ctx context.Context, subscriptionID string) ([]paymentdomain.Response, error) {
	return []paymentdomain.Response{{ID: "pay-1", SubscriptionID: subscriptionID, Status: "completed", CreatedAt: time.Now()}}, nil
}

func newTestServer(t *testing.T, subs *fakeSubscriptionService, plans *fakePlanService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := NewEngine(config.Config{Environment: "test"})
	srv := NewServer(ServerParams{
		Gin:             engine,
		Cfg:             config.Config{},
		Log:             zap.NewNop(),
		PlanSvc:         plans,
		UserSvc:         fakeUserService{},
		SubscriptionSvc: subs,
		PaymentSvc:      fakePaymentService{},
	})
	srv.RegisterRoutes()
	return engine
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestServer(t, &fakeSubscriptionService{}, &fakePlanService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePlanReturns201(t *testing.T) {
	plans := &fakePlanService{}
	engine := newTestServer(t, &fakeSubscriptionService{}, plans)

	body := bytes.NewBufferString(`{"name":"Pro","amount":29.99,"currency":"USD","billing_cycle_unit":"month"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/plans", body)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, plans.createCalls)
}

func TestMalformedBodyReturns400(t *testing.T) {
	engine := newTestServer(t, &fakeSubscriptionService{}, &fakePlanService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/plans", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestUnknownPlanReturns404(t *testing.T) {
	plans := &fakePlanService{getErr: plandomain.ErrNotFound}
	engine := newTestServer(t, &fakeSubscriptionService{}, plans)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/plans/999", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenewCancelledReturns409(t *testing.T) {
	subs := &fakeSubscriptionService{
		renewErr: shared.NewTransitionError("subscription", "cancelled", "renew"),
	}
	engine := newTestServer(t, subs, &fakePlanService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/subscriptions/sub-1/renew", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_transition")
}

func TestDeclinedChargeReturns402(t *testing.T) {
	subs := &fakeSubscriptionService{renewErr: paymentdomain.ErrChargeDeclined}
	engine := newTestServer(t, subs, &fakePlanService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/subscriptions/sub-1/renew", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestCancelWithEffectiveDateBody(t *testing.T) {
	subs := &fakeSubscriptionService{}
	engine := newTestServer(t, subs, &fakePlanService{})

	body := bytes.NewBufferString(`{"effective_date":"2024-06-01T00:00:00Z"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/subscriptions/sub-1", body)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
}

func TestListSubscriptionPayments(t *testing.T) {
	engine := newTestServer(t, &fakeSubscriptionService{}, &fakePlanService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/subscriptions/sub-1/payments", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pay-1")
}
