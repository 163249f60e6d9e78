package item

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"itemstore/internal/app/server/api/envelope"
	"itemstore/internal/domain/item"
	"itemstore/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, draft item.Draft) (*item.Item, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id string) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockService) List(ctx context.Context, params pagination.Params) ([]item.Item, pagination.Meta, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(pagination.Meta), args.Error(2)
	}
	return args.Get(0).([]item.Item), args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockService) Update(ctx context.Context, id string, patch item.Patch) (*item.Item, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestHandler(svc item.Servicer) *Handler {
	return NewHandler(svc, slog.Default(), nil)
}

func TestHandler_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		items := []item.Item{{ID: "1", Name: "apple"}, {ID: "2", Name: "banana"}}
		meta := pagination.NewMeta(1, 2, 3)
		svc.On("List", ctx, pagination.Params{Page: 1, Limit: 2, Sort: "name", Order: "asc"}).
			Return(items, meta, nil)

		out, err := h.list(ctx, &listInput{Page: 1, Limit: 2, Sort: "name", Order: "asc"})

		require.NoError(t, err)
		assert.True(t, out.Body.Success)
		assert.Len(t, out.Body.Data, 2)
		assert.Equal(t, meta, out.Body.Meta.Pagination)
		assert.Equal(t, "/v1/items?limit=2&order=asc&page=1&sort=name", out.Body.Links.Self)
		require.NotNil(t, out.Body.Links.Next)
		assert.Nil(t, out.Body.Links.Prev)
	})

	t.Run("raw query params are normalized before the service sees them", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("List", ctx, pagination.Params{Page: 1, Limit: 100, Sort: "id", Order: "asc"}).
			Return([]item.Item{}, pagination.NewMeta(1, 100, 0), nil)

		_, err := h.list(ctx, &listInput{Page: -3, Limit: 9000, Sort: "", Order: "bogus"})

		require.NoError(t, err)
		svc.AssertExpectations(t)
	})

	t.Run("service failure becomes internal error envelope", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("List", ctx, mock.Anything).
			Return(nil, pagination.Meta{}, errors.New("boom"))

		_, err := h.list(ctx, &listInput{Page: 1, Limit: 20})

		var e *envelope.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusInternalServerError, e.GetStatus())
		assert.Equal(t, envelope.CodeInternal, e.Detail.Code)
	})
}

func TestHandler_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Get", ctx, "1").Return(&item.Item{ID: "1", Name: "apple"}, nil)

		out, err := h.find(ctx, &findInput{ID: "1"})

		require.NoError(t, err)
		assert.True(t, out.Body.Success)
		assert.Equal(t, "apple", out.Body.Data.Name)
	})

	t.Run("missing id becomes 404 envelope", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Get", ctx, "99").Return(nil, item.ErrNotFound)

		_, err := h.find(ctx, &findInput{ID: "99"})

		var e *envelope.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusNotFound, e.GetStatus())
		assert.Equal(t, envelope.CodeNotFound, e.Detail.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		draft := item.Draft{Name: "widget", Description: "a widget"}
		svc.On("Create", ctx, draft).Return(&item.Item{ID: "1", Name: "widget"}, nil)

		input := &createInput{}
		input.Body.Data.Type = "item"
		input.Body.Data.Attributes = createAttributes{Name: "widget", Description: "a widget"}

		out, err := h.create(ctx, input)

		require.NoError(t, err)
		assert.True(t, out.Body.Success)
		assert.Equal(t, "1", out.Body.Data.ID)
	})

	t.Run("validation failure carries field violations", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		verr := &item.ValidationError{Violations: []item.FieldViolation{
			{Field: "name", Code: item.ViolationRequired, Message: "name must not be empty"},
		}}
		svc.On("Create", ctx, mock.Anything).Return(nil, verr)

		input := &createInput{}
		input.Body.Data.Type = "item"

		_, err := h.create(ctx, input)

		var e *envelope.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusUnprocessableEntity, e.GetStatus())
		assert.Equal(t, envelope.CodeValidation, e.Detail.Code)
		require.Len(t, e.Detail.Details, 1)
		assert.Equal(t, "name", e.Detail.Details[0].Field)
	})
}

func TestHandler_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("absent and empty attributes stay distinguishable", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		empty := ""
		expected := item.Patch{Description: &empty}
		svc.On("Update", ctx, "1", expected).
			Return(&item.Item{ID: "1", Name: "widget", Description: ""}, nil)

		input := &updateInput{ID: "1"}
		input.Body.Data.Type = "item"
		input.Body.Data.Attributes = updateAttributes{Description: &empty}

		out, err := h.update(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "", out.Body.Data.Description)
		svc.AssertExpectations(t)
	})

	t.Run("missing id becomes 404 envelope", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Update", ctx, "99", mock.Anything).Return(nil, item.ErrNotFound)

		name := "renamed"
		input := &updateInput{ID: "99"}
		input.Body.Data.Type = "item"
		input.Body.Data.Attributes = updateAttributes{Name: &name}

		_, err := h.update(ctx, input)

		var e *envelope.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusNotFound, e.GetStatus())
	})
}

func TestHandler_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Delete", ctx, "1").Return(nil)

		out, err := h.delete(ctx, &deleteInput{ID: "1"})

		require.NoError(t, err)
		assert.NotNil(t, out)
	})

	t.Run("missing id becomes 404 envelope, never silent success", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Delete", ctx, "99").Return(item.ErrNotFound)

		_, err := h.delete(ctx, &deleteInput{ID: "99"})

		var e *envelope.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusNotFound, e.GetStatus())
		assert.Equal(t, envelope.CodeNotFound, e.Detail.Code)
	})
}
