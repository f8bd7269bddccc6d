package repositories

import (
	"sort"

	"github.com/cppla/aaquestions/models"
)

// ReplyThread indexes a set of replies by id and resolves parent and child links
// through lookups. Parent links may dangle or form cycles; every traversal here
// terminates regardless.
type ReplyThread struct {
	byID     map[uint]models.Reply
	ids      []uint
	children map[uint][]uint
}

// NewReplyThread builds a thread from replies. Duplicate ids keep the first row.
func NewReplyThread(replies []models.Reply) *ReplyThread {
	t := &ReplyThread{
		byID:     make(map[uint]models.Reply, len(replies)),
		children: make(map[uint][]uint),
	}
	for _, reply := range replies {
		if _, seen := t.byID[reply.ID]; seen {
			continue
		}
		t.byID[reply.ID] = reply
		t.ids = append(t.ids, reply.ID)
	}
	sort.Slice(t.ids, func(i, j int) bool { return t.ids[i] < t.ids[j] })
	for _, id := range t.ids {
		if parent := t.byID[id].ParentID; parent != nil {
			t.children[*parent] = append(t.children[*parent], id)
		}
	}
	return t
}

// Len reports how many distinct replies the thread holds.
func (t *ReplyThread) Len() int { return len(t.ids) }

// Reply looks a reply up by id.
func (t *ReplyThread) Reply(id uint) (models.Reply, bool) {
	reply, ok := t.byID[id]
	return reply, ok
}

// Parent resolves the parent of reply within the thread. It fails with
// ErrNoParent for a top-level reply and reports false when the parent is not
// part of the thread.
func (t *ReplyThread) Parent(reply models.Reply) (models.Reply, bool, error) {
	if reply.ParentID == nil {
		return models.Reply{}, false, ErrNoParent
	}
	parent, ok := t.byID[*reply.ParentID]
	return parent, ok, nil
}

// Children returns the direct children of the reply with the given id, by id.
func (t *ReplyThread) Children(id uint) []models.Reply {
	ids := t.children[id]
	out := make([]models.Reply, 0, len(ids))
	for _, childID := range ids {
		out = append(out, t.byID[childID])
	}
	return out
}

// Roots returns the top-level replies, by id.
func (t *ReplyThread) Roots() []models.Reply {
	var out []models.Reply
	for _, id := range t.ids {
		if reply := t.byID[id]; reply.ParentID == nil {
			out = append(out, reply)
		}
	}
	return out
}

// Walk visits replies depth-first starting from the roots, passing each reply's
// depth below its starting point. Every reply is visited exactly once: replies
// not reachable from a root (dangling parent, cycle) are visited afterwards as
// starting points of their own, in id order. Returning false from fn stops the walk.
func (t *ReplyThread) Walk(fn func(reply models.Reply, depth int) bool) {
	visited := make(map[uint]bool, len(t.ids))

	var visit func(id uint, depth int) bool
	visit = func(id uint, depth int) bool {
		if visited[id] {
			return true
		}
		visited[id] = true
		if !fn(t.byID[id], depth) {
			return false
		}
		for _, childID := range t.children[id] {
			if !visit(childID, depth+1) {
				return false
			}
		}
		return true
	}

	for _, root := range t.Roots() {
		if !visit(root.ID, 0) {
			return
		}
	}
	for _, id := range t.ids {
		if !visit(id, 0) {
			return
		}
	}
}
