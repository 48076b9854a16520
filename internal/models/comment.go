package models

// Comments carry arbitrary caller-supplied fields, so they are stored and
// served as raw documents. The `id` field is a loose reference to a Book,
// never enforced by the store.

const (
	CommentEntity = "comment"
)
