package workspace

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/dirkit/internal/dataset"
	"github.com/GriffinCanCode/dirkit/internal/store"
	"github.com/GriffinCanCode/dirkit/internal/types"
)

func persistenceTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "workspace.json.save",
			Name:        "Save JSON",
			Description: "Save a value as a JSON file (overwrites)",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name", Required: true},
				{Name: "data", Type: "object", Description: "Value to save", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "workspace.json.load",
			Name:        "Load JSON",
			Description: "Load a JSON file (absent reported, not raised)",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "workspace.gob.save",
			Name:        "Save Binary",
			Description: "Save a value with the Go-native binary codec",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name", Required: true},
				{Name: "data", Type: "object", Description: "Value to save", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "workspace.gob.load",
			Name:        "Load Binary",
			Description: "Load a Go-native binary file",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "workspace.tables.save",
			Name:        "Save Tables Blob",
			Description: "Save a named table collection as one binary blob",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name", Required: true},
				{Name: "tables", Type: "object", Description: "Name -> {columns, rows}", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "workspace.tables.load",
			Name:        "Load Tables Blob",
			Description: "Load a table collection from a binary blob",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "workspace.store.save",
			Name:        "Save Table Store",
			Description: "Save a table collection as a single compressed store file",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name", Required: true},
				{Name: "tables", Type: "object", Description: "Name -> {columns, rows}", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "workspace.store.load",
			Name:        "Load Table Store",
			Description: "Load every table from a store file",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "File name", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "workspace.csv.save",
			Name:        "Save CSV Folder",
			Description: "Save one CSV file per table into a folder",
			Parameters: []types.Parameter{
				{Name: "folder", Type: "string", Description: "Folder path", Required: true},
				{Name: "tables", Type: "object", Description: "Name -> {columns, rows}", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "workspace.csv.load",
			Name:        "Load CSV Folder",
			Description: "Load every CSV file in a folder as a table collection",
			Parameters: []types.Parameter{
				{Name: "folder", Type: "string", Description: "Folder path", Required: true},
			},
			Returns: "object",
		},
	}
}

func (p *Provider) jsonSave(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}
	data, ok := params["data"]
	if !ok {
		return failure("data parameter required")
	}

	path := p.ws.Resolve(name)
	if err := store.SaveJSON(path, data); err != nil {
		return failure(fmt.Sprintf("save failed: %v", err))
	}
	_ = p.ws.Refresh()

	return success(map[string]interface{}{"saved": true, "path": path})
}

func (p *Provider) jsonLoad(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}

	var data interface{}
	err := store.LoadJSON(p.ws.Resolve(name), &data)
	if errors.Is(err, store.ErrNotFound) {
		return success(map[string]interface{}{"found": false, "name": name})
	}
	if err != nil {
		return failure(fmt.Sprintf("load failed: %v", err))
	}

	return success(map[string]interface{}{"found": true, "name": name, "data": data})
}

func (p *Provider) gobSave(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}
	data, ok := params["data"]
	if !ok {
		return failure("data parameter required")
	}

	path := p.ws.Resolve(name)
	if err := store.SaveGob(path, data); err != nil {
		return failure(fmt.Sprintf("save failed: %v", err))
	}
	_ = p.ws.Refresh()

	return success(map[string]interface{}{"saved": true, "path": path})
}

func (p *Provider) gobLoad(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}

	data, err := store.LoadGob(p.ws.Resolve(name))
	if errors.Is(err, store.ErrNotFound) {
		return success(map[string]interface{}{"found": false, "name": name})
	}
	if err != nil {
		return failure(fmt.Sprintf("load failed: %v", err))
	}

	return success(map[string]interface{}{"found": true, "name": name, "data": data})
}

func (p *Provider) tablesSave(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}
	coll, err := collectionParam(params)
	if err != nil {
		return failure(err.Error())
	}

	path := p.ws.Resolve(name)
	if err := store.SaveBlob(path, coll); err != nil {
		return failure(fmt.Sprintf("save failed: %v", err))
	}
	_ = p.ws.Refresh()

	return success(map[string]interface{}{"saved": true, "path": path, "tables": len(coll)})
}

func (p *Provider) tablesLoad(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}

	coll, err := store.LoadBlob(p.ws.Resolve(name))
	if errors.Is(err, store.ErrNotFound) {
		return success(map[string]interface{}{"found": false, "name": name})
	}
	if err != nil {
		return failure(fmt.Sprintf("load failed: %v", err))
	}

	return success(map[string]interface{}{"found": true, "tables": collectionData(coll)})
}

func (p *Provider) storeSave(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}
	coll, err := collectionParam(params)
	if err != nil {
		return failure(err.Error())
	}

	path := p.ws.Resolve(name)
	if err := store.SaveStore(path, coll); err != nil {
		return failure(fmt.Sprintf("save failed: %v", err))
	}
	_ = p.ws.Refresh()

	return success(map[string]interface{}{"saved": true, "path": path, "tables": len(coll)})
}

func (p *Provider) storeLoad(params map[string]interface{}) (*types.Result, error) {
	name, ok := stringParam(params, "name")
	if !ok {
		return failure("name parameter required")
	}

	coll, err := store.LoadStore(p.ws.Resolve(name))
	if errors.Is(err, store.ErrNotFound) {
		return success(map[string]interface{}{"found": false, "name": name})
	}
	if err != nil {
		return failure(fmt.Sprintf("load failed: %v", err))
	}

	return success(map[string]interface{}{"found": true, "tables": collectionData(coll)})
}

func (p *Provider) csvSave(params map[string]interface{}) (*types.Result, error) {
	folder, ok := stringParam(params, "folder")
	if !ok {
		return failure("folder parameter required")
	}
	coll, err := collectionParam(params)
	if err != nil {
		return failure(err.Error())
	}

	path := p.ws.Resolve(folder)
	if err := store.SaveCSVDir(path, coll); err != nil {
		return failure(fmt.Sprintf("save failed: %v", err))
	}
	_ = p.ws.Refresh()

	return success(map[string]interface{}{"saved": true, "path": path, "tables": len(coll)})
}

func (p *Provider) csvLoad(params map[string]interface{}) (*types.Result, error) {
	folder, ok := stringParam(params, "folder")
	if !ok {
		return failure("folder parameter required")
	}

	coll, err := store.LoadCSVDir(p.ws.Resolve(folder))
	if errors.Is(err, store.ErrNotFound) {
		return success(map[string]interface{}{"found": false, "folder": folder})
	}
	if err != nil {
		return failure(fmt.Sprintf("load failed: %v", err))
	}

	return success(map[string]interface{}{"found": true, "tables": collectionData(coll)})
}

// collectionParam decodes the "tables" parameter: a map of table name
// to {columns: [...], rows: [[...]]}. Cells are stringified the way
// they would land in a CSV.
func collectionParam(params map[string]interface{}) (dataset.Collection, error) {
	raw, ok := params["tables"].(map[string]interface{})
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("tables object required")
	}

	coll := dataset.Collection{}
	for name, tv := range raw {
		tm, ok := tv.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("table %s must be an object", name)
		}

		cols, ok := tm["columns"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("table %s: columns array required", name)
		}
		table := &dataset.Table{Columns: make([]string, len(cols))}
		for i, c := range cols {
			table.Columns[i] = fmt.Sprintf("%v", c)
		}

		if rows, ok := tm["rows"].([]interface{}); ok {
			table.Rows = make([][]string, len(rows))
			for i, rv := range rows {
				cells, ok := rv.([]interface{})
				if !ok {
					return nil, fmt.Errorf("table %s: row %d must be an array", name, i)
				}
				row := make([]string, len(cells))
				for j, cell := range cells {
					row[j] = fmt.Sprintf("%v", cell)
				}
				table.Rows[i] = row
			}
		}

		coll[name] = table
	}
	return coll, nil
}

func collectionData(c dataset.Collection) map[string]interface{} {
	out := make(map[string]interface{}, len(c))
	for name, t := range c {
		out[name] = map[string]interface{}{
			"columns": t.Columns,
			"rows":    t.Rows,
		}
	}
	return out
}
