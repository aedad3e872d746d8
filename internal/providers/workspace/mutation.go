package workspace

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/dirkit/internal/types"
	ws "github.com/GriffinCanCode/dirkit/internal/workspace"
)

func mutationTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "workspace.search",
			Name:        "Search Files",
			Description: "Recursively collect files whose name contains a substring",
			Parameters: []types.Parameter{
				{Name: "pattern", Type: "string", Description: "Name substring", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "workspace.glob",
			Name:        "Glob",
			Description: "Match paths with ** glob patterns",
			Parameters: []types.Parameter{
				{Name: "pattern", Type: "string", Description: "Glob pattern (e.g. '**/*.csv')", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "workspace.move",
			Name:        "Move File",
			Description: "Move a file into a destination folder, creating it if absent",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name under the current path", Required: true},
				{Name: "dest", Type: "string", Description: "Destination folder", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "workspace.delete",
			Name:        "Delete File",
			Description: "Delete a file under the current path (no-op when absent)",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name", Required: true},
			},
			Returns: "boolean",
		},
	}
}

func (p *Provider) search(params map[string]interface{}) (*types.Result, error) {
	pattern, ok := stringParam(params, "pattern")
	if !ok {
		return failure("pattern parameter required")
	}

	matches, err := p.ws.SearchNames(pattern)
	if err != nil {
		return failure(fmt.Sprintf("search failed: %v", err))
	}

	return success(map[string]interface{}{
		"pattern": pattern,
		"matches": matches,
		"count":   len(matches),
	})
}

func (p *Provider) glob(params map[string]interface{}) (*types.Result, error) {
	pattern, ok := stringParam(params, "pattern")
	if !ok {
		return failure("pattern parameter required")
	}

	matches, err := p.ws.Glob(pattern)
	if err != nil {
		return failure(fmt.Sprintf("glob failed: %v", err))
	}

	return success(map[string]interface{}{
		"pattern": pattern,
		"matches": matches,
		"count":   len(matches),
	})
}

func (p *Provider) move(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}
	dest, ok := stringParam(params, "dest")
	if !ok {
		return failure("dest parameter required")
	}

	// Missing sources and I/O failures both surface as non-fatal
	// failures; neither is raised to the transport layer.
	if err := p.ws.Move(name, dest); err != nil {
		if errors.Is(err, ws.ErrNotFound) {
			return failure(fmt.Sprintf("file %s does not exist", name))
		}
		return failure(fmt.Sprintf("move failed: %v", err))
	}

	return success(map[string]interface{}{"moved": true, "name": name, "dest": dest})
}

func (p *Provider) delete(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}

	if err := p.ws.Remove(name); err != nil {
		return failure(fmt.Sprintf("delete failed: %v", err))
	}

	return success(map[string]interface{}{"deleted": true, "name": name})
}
