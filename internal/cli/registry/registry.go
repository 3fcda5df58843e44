package registry

import (
	"fmt"

	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/urfave/cli/v3"
)

// CommandFactory builds one top level command. Factories carry the services
// their commands need.
type CommandFactory interface {
	CreateCommand(t *i18n.Translations) *cli.Command
}

type Registry struct {
	factories map[string]CommandFactory
	order     []string
	t         *i18n.Translations
}

func NewRegistry(t *i18n.Translations) *Registry {
	return &Registry{
		factories: make(map[string]CommandFactory),
		t:         t,
	}
}

func (r *Registry) Register(name string, factory CommandFactory) error {
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%s", r.t.GetMessage("factory_already_registered", 0, map[string]interface{}{
			"FactoryName": name,
		}))
	}
	r.factories[name] = factory
	r.order = append(r.order, name)
	return nil
}

// CreateCommands builds the commands in registration order.
func (r *Registry) CreateCommands() []*cli.Command {
	commands := make([]*cli.Command, 0, len(r.order))
	for _, name := range r.order {
		commands = append(commands, r.factories[name].CreateCommand(r.t))
	}
	return commands
}
