package workspace

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/dirkit/internal/types"
	ws "github.com/GriffinCanCode/dirkit/internal/workspace"
)

func navigationTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "workspace.navigate",
			Name:        "Navigate",
			Description: "Re-root the workspace at a directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "workspace.info",
			Name:        "Workspace Info",
			Description: "Current path, parent, home, and cached entries",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
		{
			ID:          "workspace.join",
			Name:        "Join Segments",
			Description: "Join segments onto the current path, creating missing levels",
			Parameters: []types.Parameter{
				{Name: "segments", Type: "array", Description: "Path segments", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "workspace.find_up",
			Name:        "Find Folder Upward",
			Description: "Find the closest exactly-named folder walking toward the root",
			Parameters: []types.Parameter{
				{Name: "keyword", Type: "string", Description: "Folder name (default \"data\")", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "workspace.find_down",
			Name:        "Find Folder Downward",
			Description: "Find the first folder whose name contains the keyword, top-down",
			Parameters: []types.Parameter{
				{Name: "keyword", Type: "string", Description: "Name substring (default \"data\")", Required: false},
			},
			Returns: "object",
		},
	}
}

func (p *Provider) navigate(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return failure("path parameter required")
	}

	if err := p.ws.Navigate(path); err != nil {
		return failure(fmt.Sprintf("navigate failed: %v", err))
	}

	return success(map[string]interface{}{
		"path":    p.ws.Path(),
		"parent":  p.ws.Parent(),
		"entries": p.ws.Entries(),
	})
}

func (p *Provider) info() (*types.Result, error) {
	entries := p.ws.Entries()
	return success(map[string]interface{}{
		"path":          p.ws.Path(),
		"parent":        p.ws.Parent(),
		"origin_parent": p.ws.OriginParent(),
		"home":          p.ws.Home(),
		"entries":       entries,
		"count":         len(entries),
	})
}

func (p *Provider) join(params map[string]interface{}) (*types.Result, error) {
	raw, ok := params["segments"].([]interface{})
	if !ok || len(raw) == 0 {
		return failure("segments array required")
	}

	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		seg, ok := s.(string)
		if !ok || seg == "" {
			return failure("segments must be non-empty strings")
		}
		segments = append(segments, seg)
	}

	path, err := p.ws.EnsureSegments(segments...)
	if err != nil {
		return failure(fmt.Sprintf("join failed: %v", err))
	}

	return success(map[string]interface{}{"path": path})
}

func (p *Provider) findUp(params map[string]interface{}) (*types.Result, error) {
	keyword, _ := stringParam(params, "keyword")

	path, err := p.ws.FindUp(keyword)
	if errors.Is(err, ws.ErrNotFound) {
		return success(map[string]interface{}{"found": false})
	}
	if err != nil {
		return failure(fmt.Sprintf("upward search failed: %v", err))
	}

	return success(map[string]interface{}{"found": true, "path": path})
}

func (p *Provider) findDown(params map[string]interface{}) (*types.Result, error) {
	keyword, _ := stringParam(params, "keyword")

	path, err := p.ws.FindDown(keyword)
	if errors.Is(err, ws.ErrNotFound) {
		return success(map[string]interface{}{"found": false})
	}
	if err != nil {
		return failure(fmt.Sprintf("downward search failed: %v", err))
	}

	return success(map[string]interface{}{"found": true, "path": path})
}
