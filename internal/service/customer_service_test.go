package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/repository"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

func TestCustomerServiceList(t *testing.T) {
	f := newFixture(t)

	page, err := await(t, f.customers.GetCustomers(1, 5, repository.CustomerFilter{}))
	require.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Customers, 5)
}

func TestCustomerServiceGetAbsentResolvesNil(t *testing.T) {
	f := newFixture(t)

	customer, err := await(t, f.customers.GetCustomerByID("CUST-999"))
	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestCustomerServiceCreatePublishesEvent(t *testing.T) {
	f := newFixture(t)
	f.loginAs(t, "admin")

	name := "Omni Consumer Products"
	sla := domain.SlaGold
	created, err := await(t, f.customers.CreateCustomer(domain.CustomerInput{Name: &name, SlaLevel: &sla}))
	require.NoError(t, err)
	assert.Equal(t, "CUST-013", created.ID)

	published := f.recorder.ofType(events.EventCustomerCreated)
	require.Len(t, published, 1)
	assert.Equal(t, "CUST-013", published[0].EntityID)
	assert.Equal(t, "admin", published[0].Actor)
}

func TestCustomerServiceDeleteSentinel(t *testing.T) {
	f := newFixture(t)
	f.loginAs(t, "admin")

	// The contracts sentinel rejects regardless of who asks.
	_, err := await(t, f.customers.DeleteCustomer(repository.CustomerErrorID))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "SIMULATED_FAULT"))
	assert.Empty(t, f.recorder.ofType(events.EventCustomerDeleted))
}

func TestCustomerServiceUpdateNotFound(t *testing.T) {
	f := newFixture(t)
	f.loginAs(t, "admin")

	name := "Nobody"
	_, err := await(t, f.customers.UpdateCustomer("CUST-999", domain.CustomerInput{Name: &name}))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestCommentServiceAdd(t *testing.T) {
	f := newFixture(t)
	f.loginAs(t, "agent")

	comment, err := await(t, f.comments.AddComment("TKT-002", domain.CommentInput{Message: "On it."}))
	require.NoError(t, err)
	assert.Equal(t, "CMT-206", comment.ID)
	assert.Equal(t, "agent", comment.AuthorUsername)

	published := f.recorder.ofType(events.EventCommentAdded)
	require.Len(t, published, 1)
	assert.Equal(t, "CMT-206", published[0].EntityID)

	thread, err := await(t, f.comments.GetCommentsByTicketID("TKT-002"))
	require.NoError(t, err)
	assert.Equal(t, "CMT-206", thread[len(thread)-1].ID)
}

func TestCommentServiceAddRequiresSession(t *testing.T) {
	f := newFixture(t)

	_, err := await(t, f.comments.AddComment("TKT-001", domain.CommentInput{Message: "anon"}))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNAUTHENTICATED"))
}
