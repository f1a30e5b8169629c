package intent

import "jarvis-assistant/internal/model"

// Extractor turns free text into a model.Intent using keyword tables.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	roles map[string]model.ParamRole
}

// New creates an Extractor.
func New() *Extractor {
	roles := make(map[string]model.ParamRole, len(model.ParamRoles))
	for _, r := range model.ParamRoles {
		roles[string(r)] = r
	}
	return &Extractor{roles: roles}
}
