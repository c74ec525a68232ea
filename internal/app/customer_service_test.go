package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cimillas/crm-graphql/internal/clock"
	"github.com/cimillas/crm-graphql/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_CreateCustomer(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("creates customer", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCustomerService(store, clock.NewFixed(now))

		got, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: "+1234567890",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "Alice", got.Name)
		assert.Equal(t, now, got.CreatedAt)
		assert.Contains(t, store.customers, got.ID)
		assert.Equal(t, 1, store.txCount)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCustomerService(store, clock.NewFixed(now))
		ctx := context.Background()

		_, err := svc.CreateCustomer(ctx, CreateCustomerInput{Name: "Alice", Email: "alice@example.com"})
		require.NoError(t, err)

		_, err = svc.CreateCustomer(ctx, CreateCustomerInput{Name: "Other", Email: "alice@example.com"})
		require.ErrorIs(t, err, domain.ErrEmailTaken)
		assert.Len(t, store.customers, 1)
	})

	t.Run("email match is case sensitive", func(t *testing.T) {
		store := newFakeStore()
		store.addCustomer("c-1", "Alice", "alice@example.com")
		svc := NewCustomerService(store, clock.NewFixed(now))

		_, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{Name: "Alice", Email: "Alice@example.com"})
		require.NoError(t, err)
	})

	t.Run("phone formats", func(t *testing.T) {
		tests := []struct {
			phone string
			err   error
		}{
			{phone: "+1234567890"},
			{phone: "123-456-7890"},
			{phone: ""},
			{phone: "abc", err: domain.ErrInvalidPhone},
		}
		for _, tt := range tests {
			store := newFakeStore()
			svc := NewCustomerService(store, clock.NewFixed(now))
			_, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
				Name:  "Bob",
				Email: "bob@example.com",
				Phone: tt.phone,
			})
			if tt.err == nil {
				assert.NoError(t, err, "phone %q", tt.phone)
			} else {
				assert.ErrorIs(t, err, tt.err, "phone %q", tt.phone)
				assert.Empty(t, store.customers)
			}
		}
	})

	t.Run("missing name is reported before taken email", func(t *testing.T) {
		store := newFakeStore()
		store.addCustomer("c-1", "Alice", "alice@example.com")
		svc := NewCustomerService(store, clock.NewFixed(now))

		_, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{Name: " ", Email: "alice@example.com"})
		require.ErrorIs(t, err, domain.ErrMissingField)
		assert.Zero(t, store.txCount)
	})

	t.Run("taken email is reported before bad phone", func(t *testing.T) {
		store := newFakeStore()
		store.addCustomer("c-1", "Alice", "alice@example.com")
		svc := NewCustomerService(store, clock.NewFixed(now))

		_, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{Name: "A", Email: "alice@example.com", Phone: "abc"})
		require.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("unique violation from store surfaces as taken email", func(t *testing.T) {
		store := newFakeStore()
		store.createErr = domain.ErrEmailTaken
		svc := NewCustomerService(store, clock.NewFixed(now))

		_, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{Name: "A", Email: "a@x.com"})
		require.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestCustomerService_BulkCreateCustomers(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("collects failures without aborting", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCustomerService(store, clock.NewFixed(now))

		res, err := svc.BulkCreateCustomers(context.Background(), []CreateCustomerInput{
			{Name: "A", Email: "a@x.com"},
			{Name: "", Email: "b@x.com"},
			{Name: "C", Email: "a@x.com"},
			{Name: "D", Email: "d@x.com", Phone: "abc"},
			{Name: "E", Email: "e@x.com", Phone: "123-456-7890"},
		})
		require.NoError(t, err)

		require.Len(t, res.Created, 2)
		assert.Equal(t, "A", res.Created[0].Name)
		assert.Equal(t, "E", res.Created[1].Name)

		require.Len(t, res.Errors, 3)
		assert.Equal(t, 1, res.Errors[0].Index)
		assert.ErrorIs(t, res.Errors[0], domain.ErrMissingField)
		assert.Equal(t, "name and email are required", res.Errors[0].Error())
		assert.Equal(t, 2, res.Errors[1].Index)
		assert.Equal(t, "email a@x.com already exists", res.Errors[1].Error())
		assert.Equal(t, "invalid phone format for d@x.com", res.Errors[2].Error())

		assert.Len(t, store.customers, 2)
	})

	t.Run("empty batch", func(t *testing.T) {
		svc := NewCustomerService(newFakeStore(), clock.NewFixed(now))

		res, err := svc.BulkCreateCustomers(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, res.Created)
		assert.Empty(t, res.Errors)
	})

	t.Run("store failure is recorded and the batch continues", func(t *testing.T) {
		store := newFakeStore()
		storeErr := errors.New("invalid byte sequence for encoding UTF8: 0x00")
		store.failEmails = map[string]error{"b@x.com": storeErr}
		svc := NewCustomerService(store, clock.NewFixed(now))

		res, err := svc.BulkCreateCustomers(context.Background(), []CreateCustomerInput{
			{Name: "A", Email: "a@x.com"},
			{Name: "B\x00", Email: "b@x.com"},
			{Name: "C", Email: "c@x.com"},
		})
		require.NoError(t, err)

		require.Len(t, res.Created, 2)
		assert.Equal(t, "a@x.com", res.Created[0].Email)
		assert.Equal(t, "c@x.com", res.Created[1].Email)

		require.Len(t, res.Errors, 1)
		assert.Equal(t, 1, res.Errors[0].Index)
		assert.ErrorIs(t, res.Errors[0], storeErr)
		assert.Equal(t, "could not create customer b@x.com", res.Errors[0].Error())
		assert.Len(t, store.customers, 2)
	})

	t.Run("cancelled context stops the batch", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCustomerService(store, clock.NewFixed(now))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := svc.BulkCreateCustomers(ctx, []CreateCustomerInput{
			{Name: "A", Email: "a@x.com"},
			{Name: "B", Email: "b@x.com"},
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, res.Created)
		assert.Empty(t, store.customers)
	})
}
