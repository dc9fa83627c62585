package core

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Handle identifies a drawing entity for its whole lifetime.
type Handle = uuid.UUID

type handleTable struct {
	mu     sync.Mutex
	owners map[Handle]interface{}
}

var handles = handleTable{owners: make(map[Handle]interface{})}

// AcquireHandle registers the owner and returns its new identifier.
func AcquireHandle(owner interface{}) Handle {
	handles.mu.Lock()
	defer handles.mu.Unlock()

	id := uuid.New()
	handles.owners[id] = owner
	return id
}

// ReleaseHandle frees the identifier, making its owner collectable. Releasing
// a handle that was never acquired is an error and nothing is done.
func ReleaseHandle(id Handle) error {
	handles.mu.Lock()
	defer handles.mu.Unlock()

	if _, ok := handles.owners[id]; !ok {
		return fmt.Errorf("release_handle: id '%s' not registered. Nothing was done", id)
	}
	delete(handles.owners, id)
	return nil
}

// HandleOwner looks up the owner registered for id.
func HandleOwner(id Handle) (interface{}, bool) {
	handles.mu.Lock()
	defer handles.mu.Unlock()

	owner, ok := handles.owners[id]
	return owner, ok
}
