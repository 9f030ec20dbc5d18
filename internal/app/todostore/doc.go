// Package todostore is the client-side todo state container.
//
// A Store owns the local mirror of the remote todo list plus the view state
// (filter, search query, sort mode). Every mutation goes through a
// ports.TodoAPI and the outcome is reported through a ports.Notifier; failures
// never reach the caller.
//
// Toggle and delete are optimistic: the local list changes before the request
// is sent and is rolled back if the request fails. Rollback is per item, so a
// failed toggle only restores the completion flag of the toggled todo and a
// failed delete only reinserts the deleted todo. Mutations that ran in between
// are kept.
//
// The store lock is never held across a network call, so operations interleave
// freely. When a ports.StateStorage is configured the full state is saved under
// StorageKey after every change and can be restored with Rehydrate.
package todostore
