package contract

import "ai-research-be/internal/entity"

// IStateRepository persists the whole State object. There are no partial
// updates: Load materializes everything and Update rewrites everything.
type IStateRepository interface {
	// Load returns the current state, or a fresh empty state when nothing
	// has been persisted yet.
	Load() (*entity.State, error)

	// Update runs the mutation under the repository's exclusion so a full
	// load-mutate-save cycle cannot interleave with another writer.
	Update(mutate func(*entity.State) error) (*entity.State, error)
}
