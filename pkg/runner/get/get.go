package get

import (
	"context"

	"tableflip.dev/sked/pkg/app"
	"tableflip.dev/sked/pkg/printers"
	"tableflip.dev/sked/pkg/registry"
)

// Tasks lists tasks for a view and client filter, display sorted.
type Tasks struct {
	View     registry.View
	ClientID string
	ShowID   bool

	Service *app.Service
}

func (g *Tasks) Do(ctx context.Context) error {
	tasks := g.Service.ListTasks(g.View, g.ClientID)

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.TitleWithCount("Tasks", len(tasks))
	pp.Tasks(g.Service.Clients.NameFor, tasks...)
	return nil
}

// Clients lists the client registry, name sorted.
type Clients struct {
	ShowID bool

	Service *app.Service
}

func (g *Clients) Do(ctx context.Context) error {
	clients := g.Service.Clients.List()

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.Title("Clients")
	pp.Clients(clients, func(id string) int { return len(g.Service.Tasks.IDsForClient(id)) })
	return nil
}
