package workspace

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/dirkit/internal/types"
	ws "github.com/GriffinCanCode/dirkit/internal/workspace"
)

func inspectionTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "workspace.list",
			Name:        "List Entries",
			Description: "List immediate children of a directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path (default current)", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "workspace.count",
			Name:        "Count Entries",
			Description: "Count immediate children classified as files or directories",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path (default current)", Required: false},
				{Name: "kind", Type: "string", Description: "\"files\" or \"directories\"", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "workspace.stat",
			Name:        "File Info",
			Description: "Size, modification time, permissions, and MIME type of a file",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name under the current path", Required: true},
			},
			Returns: "object",
		},
	}
}

func (p *Provider) list(params map[string]interface{}) (*types.Result, error) {
	path, _ := stringParam(params, "path")

	entries, err := p.ws.List(path)
	if err != nil {
		return failure(fmt.Sprintf("list failed: %v", err))
	}

	return success(map[string]interface{}{
		"path":    p.ws.Resolve(path),
		"entries": entries,
		"count":   len(entries),
	})
}

func (p *Provider) count(params map[string]interface{}) (*types.Result, error) {
	kind, ok := stringParam(params, "kind")
	if !ok {
		return failure("kind parameter required")
	}
	path, _ := stringParam(params, "path")

	n, err := p.ws.Count(path, ws.Kind(kind))
	if errors.Is(err, ws.ErrInvalidKind) {
		return failure(err.Error())
	}
	if err != nil {
		return failure(fmt.Sprintf("count failed: %v", err))
	}

	return success(map[string]interface{}{"kind": kind, "count": n})
}

func (p *Provider) stat(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}

	info, err := p.ws.Stat(name)
	if errors.Is(err, ws.ErrNotFound) {
		return success(map[string]interface{}{"found": false, "name": name})
	}
	if err != nil {
		return failure(fmt.Sprintf("stat failed: %v", err))
	}

	return success(map[string]interface{}{
		"found":     true,
		"name":      info.Name,
		"path":      info.Path,
		"size":      info.Size,
		"mode":      info.Mode,
		"modified":  info.Modified.Unix(),
		"extension": info.Extension,
		"mime_type": info.MIMEType,
	})
}
