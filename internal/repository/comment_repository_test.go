package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/session"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

func newCommentRepo(t *testing.T, sessions session.Provider) CommentRepository {
	t.Helper()
	repo := NewCommentRepository(sessions)
	repo.ResetData()
	return repo
}

func TestCommentListChronological(t *testing.T) {
	repo := newCommentRepo(t, asAdmin())

	thread := repo.ListByTicket("TKT-001")
	require.Len(t, thread, 3)
	assert.Equal(t, "CMT-001", thread[0].ID)
	assert.Equal(t, "CMT-002", thread[1].ID)
	assert.Equal(t, "CMT-003", thread[2].ID)
	for i := 1; i < len(thread); i++ {
		assert.False(t, thread[i].CreatedAt.Before(thread[i-1].CreatedAt))
	}
}

func TestCommentListUnknownTicketIsEmpty(t *testing.T) {
	repo := newCommentRepo(t, asAdmin())
	assert.Empty(t, repo.ListByTicket("TKT-999"))
}

func TestCommentAddStampsSessionAuthor(t *testing.T) {
	repo := newCommentRepo(t, asAgent())

	comment, err := repo.Add("TKT-002", domain.CommentInput{Message: "Looking into it."})
	require.NoError(t, err)
	assert.Equal(t, "CMT-206", comment.ID)
	assert.Equal(t, "TKT-002", comment.TicketID)
	assert.Equal(t, "agent", comment.AuthorUsername)
	assert.Equal(t, "Looking into it.", comment.Message)

	thread := repo.ListByTicket("TKT-002")
	assert.Equal(t, "CMT-206", thread[len(thread)-1].ID)
}

func TestCommentAddRequiresSession(t *testing.T) {
	repo := newCommentRepo(t, anonymous())

	_, err := repo.Add("TKT-001", domain.CommentInput{Message: "drive-by"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNAUTHENTICATED"))
	assert.Len(t, repo.ListByTicket("TKT-001"), 3)
}

func TestCommentResetRewindsCounter(t *testing.T) {
	repo := newCommentRepo(t, asAdmin())

	first, err := repo.Add("TKT-003", domain.CommentInput{Message: "one"})
	require.NoError(t, err)
	require.Equal(t, "CMT-206", first.ID)

	second, err := repo.Add("TKT-003", domain.CommentInput{Message: "two"})
	require.NoError(t, err)
	require.Equal(t, "CMT-207", second.ID)

	repo.ResetData()
	again, err := repo.Add("TKT-003", domain.CommentInput{Message: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, "CMT-206", again.ID)
}
