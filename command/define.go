package command

import (
	"context"
	"strings"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-attrenum/generator"
	"github.com/goliatone/go-attrenum/pkg/types"
)

// DefineInput describes one enumerated attribute to define on Host.
type DefineInput struct {
	Host      types.Host
	Attribute string
	Choices   []any
	Options   types.Options
	Result    *DefineResult
}

// DefineResult reports the member names installed by a define command.
type DefineResult struct {
	Attribute  string
	Constant   string
	Predicates []string
	Scopes     []string
}

// Type implements gocommand.Message.
func (DefineInput) Type() string {
	return "command.attrenum.define"
}

// Validate implements gocommand.Message.
func (input DefineInput) Validate() error {
	if input.Host == nil {
		return ErrHostRequired
	}
	if strings.TrimSpace(input.Attribute) == "" {
		return ErrAttributeRequired
	}
	return nil
}

// Hooks are invoked after successful commands.
type Hooks struct {
	AfterDefine func(context.Context, DefineResult)
}

// DefineCommandConfig wires dependencies for the define command.
type DefineCommandConfig struct {
	Logger types.Logger
	Hooks  Hooks
}

// DefineCommand generates and installs the members of an enumerated attribute.
type DefineCommand struct {
	logger types.Logger
	hooks  Hooks
}

// NewDefineCommand constructs the define handler.
func NewDefineCommand(cfg DefineCommandConfig) *DefineCommand {
	return &DefineCommand{
		logger: safeLogger(cfg.Logger),
		hooks:  cfg.Hooks,
	}
}

var _ gocommand.Commander[DefineInput] = (*DefineCommand)(nil)

// Execute validates the payload and applies the generator to the host.
func (c *DefineCommand) Execute(ctx context.Context, input DefineInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	host := &capturingHost{Host: input.Host}
	attribute := strings.TrimSpace(input.Attribute)
	if err := generator.Apply(host, attribute, input.Choices, input.Options, generator.WithLogger(c.logger)); err != nil {
		c.logger.Error("attrenum define failed", err, "attribute", attribute)
		return err
	}

	result := DefineResult{Attribute: attribute}
	if members := host.installed; members != nil {
		if members.Constant != nil {
			result.Constant = members.Constant.Name
		}
		for _, p := range members.Predicates {
			result.Predicates = append(result.Predicates, p.Name)
		}
		for _, s := range members.Scopes {
			result.Scopes = append(result.Scopes, s.Name)
		}
	}

	c.logger.Info("attrenum attribute defined",
		"attribute", attribute,
		"constant", result.Constant,
		"predicates", len(result.Predicates),
		"scopes", len(result.Scopes),
	)
	emitDefineHook(ctx, c.hooks, result)

	if input.Result != nil {
		*input.Result = result
	}
	return nil
}
