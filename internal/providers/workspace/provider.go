package workspace

import (
	"fmt"

	"github.com/GriffinCanCode/dirkit/internal/logging"
	"github.com/GriffinCanCode/dirkit/internal/types"
	ws "github.com/GriffinCanCode/dirkit/internal/workspace"
)

// Provider exposes workspace operations as service tools.
type Provider struct {
	ws  *ws.Workspace
	log *logging.Logger
}

// NewProvider creates a workspace provider around an existing workspace.
func NewProvider(w *ws.Workspace, log *logging.Logger) *Provider {
	if log == nil {
		log = logging.NewNop()
	}
	return &Provider{ws: w, log: log}
}

// Workspace returns the underlying workspace.
func (p *Provider) Workspace() *ws.Workspace {
	return p.ws
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	tools := navigationTools()
	tools = append(tools, inspectionTools()...)
	tools = append(tools, mutationTools()...)
	tools = append(tools, persistenceTools()...)

	return types.Service{
		ID:          "workspace",
		Name:        "Workspace Service",
		Description: "Directory navigation, keyword-folder search, file operations, and tabular persistence",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"navigate",
			"list",
			"count",
			"stat",
			"search",
			"move",
			"delete",
			"persist",
		},
		Tools: tools,
	}
}

// Execute runs a workspace operation
func (p *Provider) Execute(toolID string, params map[string]interface{}, ctx *types.Context) (*types.Result, error) {
	switch toolID {
	case "workspace.navigate":
		return p.navigate(params)
	case "workspace.info":
		return p.info()
	case "workspace.join":
		return p.join(params)
	case "workspace.find_up":
		return p.findUp(params)
	case "workspace.find_down":
		return p.findDown(params)
	case "workspace.list":
		return p.list(params)
	case "workspace.count":
		return p.count(params)
	case "workspace.stat":
		return p.stat(params)
	case "workspace.search":
		return p.search(params)
	case "workspace.glob":
		return p.glob(params)
	case "workspace.move":
		return p.move(params)
	case "workspace.delete":
		return p.delete(params)
	case "workspace.json.save":
		return p.jsonSave(params)
	case "workspace.json.load":
		return p.jsonLoad(params)
	case "workspace.gob.save":
		return p.gobSave(params)
	case "workspace.gob.load":
		return p.gobLoad(params)
	case "workspace.tables.save":
		return p.tablesSave(params)
	case "workspace.tables.load":
		return p.tablesLoad(params)
	case "workspace.store.save":
		return p.storeSave(params)
	case "workspace.store.load":
		return p.storeLoad(params)
	case "workspace.csv.save":
		return p.csvSave(params)
	case "workspace.csv.load":
		return p.csvLoad(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

func stringParam(params map[string]interface{}, key string) (string, bool) {
	v, ok := params[key].(string)
	return v, ok && v != ""
}
