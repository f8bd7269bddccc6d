package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cppla/aaquestions/models"
)

func TestReplyFinders(t *testing.T) {
	repos, db := newTestRepos(t)
	seed(t, db,
		&models.Reply{ID: 1, UserID: 1, QuestionID: 10, Body: "root"},
		&models.Reply{ID: 2, UserID: 2, QuestionID: 10, ParentID: ptr(1), Body: "child"},
		&models.Reply{ID: 3, UserID: 1, QuestionID: 10, ParentID: ptr(1), Body: "child"},
		&models.Reply{ID: 4, UserID: 1, QuestionID: 10, ParentID: ptr(2), Body: "grandchild"},
	)

	r, err := repos.Replies.FindByID(2)
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Equal(t, uint(2), r.ID)
	require.NotNil(t, r.ParentID)
	require.Equal(t, uint(1), *r.ParentID)

	root, err := repos.Replies.FindByID(1)
	require.NoError(t, err)
	require.Nil(t, root.ParentID)

	missing, err := repos.Replies.FindByID(9)
	require.NoError(t, err)
	require.Nil(t, missing)

	byUser, err := repos.Replies.FindByUserID(1)
	require.NoError(t, err)
	require.Equal(t, []uint{1, 3, 4}, replyIDs(byUser))

	byParent, err := repos.Replies.FindByParentID(1)
	require.NoError(t, err)
	require.Equal(t, []uint{2, 3}, replyIDs(byParent))
}

func TestReplyParentReply(t *testing.T) {
	repos, db := newTestRepos(t)
	seed(t, db,
		&models.Reply{ID: 1, UserID: 1, QuestionID: 10, Body: "root"},
		&models.Reply{ID: 2, UserID: 2, QuestionID: 10, ParentID: ptr(1), Body: "child"},
		&models.Reply{ID: 3, UserID: 2, QuestionID: 10, ParentID: ptr(77), Body: "dangling"},
	)

	root, err := repos.Replies.FindByID(1)
	require.NoError(t, err)
	_, err = repos.Replies.ParentReply(root)
	require.ErrorIs(t, err, ErrNoParent)

	child, err := repos.Replies.FindByID(2)
	require.NoError(t, err)
	parent, err := repos.Replies.ParentReply(child)
	require.NoError(t, err)
	require.NotNil(t, parent)
	require.Equal(t, *child.ParentID, parent.ID)

	dangling, err := repos.Replies.FindByID(3)
	require.NoError(t, err)
	parent, err = repos.Replies.ParentReply(dangling)
	require.NoError(t, err)
	require.Nil(t, parent)
}

func TestReplyChildRepliesAreDirectOnly(t *testing.T) {
	repos, db := newTestRepos(t)
	seed(t, db,
		&models.Reply{ID: 1, UserID: 1, QuestionID: 10, Body: "root"},
		&models.Reply{ID: 2, UserID: 2, QuestionID: 10, ParentID: ptr(1), Body: "child"},
		&models.Reply{ID: 3, UserID: 1, QuestionID: 10, ParentID: ptr(2), Body: "grandchild"},
	)

	children, err := repos.Replies.ChildReplies(&models.Reply{ID: 1})
	require.NoError(t, err)
	require.Equal(t, []uint{2}, replyIDs(children))

	leaf, err := repos.Replies.ChildReplies(&models.Reply{ID: 3})
	require.NoError(t, err)
	require.Empty(t, leaf)
}

func TestReplyAuthorAndQuestion(t *testing.T) {
	repos, db := newTestRepos(t)
	seed(t, db,
		&models.User{ID: 1, FName: "Ada", LName: "Lovelace"},
		&models.Question{ID: 10, Title: "Engines", Body: "?", UserID: 1},
		&models.Reply{ID: 1, UserID: 1, QuestionID: 10, Body: "root"},
	)
	reply := &models.Reply{ID: 1, UserID: 1, QuestionID: 10}

	author, err := repos.Replies.Author(reply)
	require.NoError(t, err)
	require.NotNil(t, author)
	require.Equal(t, "Lovelace", author.LName)

	q, err := repos.Replies.Question(reply)
	require.NoError(t, err)
	require.NotNil(t, q)
	require.Equal(t, "Engines", q.Title)
}

func TestReplyThreadLoadsQuestionReplies(t *testing.T) {
	repos, db := newTestRepos(t)
	seed(t, db,
		&models.Reply{ID: 1, UserID: 1, QuestionID: 10, Body: "root"},
		&models.Reply{ID: 2, UserID: 2, QuestionID: 10, ParentID: ptr(1), Body: "child"},
		&models.Reply{ID: 3, UserID: 2, QuestionID: 11, Body: "other question"},
	)

	thread, err := repos.Replies.Thread(10)
	require.NoError(t, err)
	require.Equal(t, 2, thread.Len())
	require.Equal(t, []uint{2}, replyIDs(thread.Children(1)))

	_, ok := thread.Reply(3)
	require.False(t, ok)
}
