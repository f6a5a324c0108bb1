package main

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-attrenum/command"
	"github.com/goliatone/go-attrenum/naming"
	"github.com/goliatone/go-attrenum/pkg/types"
	"github.com/goliatone/go-attrenum/registry"
	"github.com/spf13/cobra"
)

func inspectCmd(verbose *bool) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the members each definition would generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose, "inspect")
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			classes := map[string]*registry.Class{}
			define := command.NewDefineCommand(command.DefineCommandConfig{Logger: logger})
			out := cmd.OutOrStdout()

			for _, enum := range cfg.Enums {
				class, ok := classes[enum.Type]
				if !ok {
					var opts []registry.Option
					if cfg.Scopes {
						opts = append(opts, registry.WithScopes())
					}
					class = registry.NewClass(enum.Type, append(opts, registry.WithLogger(logger))...)
					classes[enum.Type] = class
				}

				choices := make([]any, 0, len(enum.Choices))
				for _, c := range enum.Choices {
					choices = append(choices, c)
				}
				attribute := strings.TrimSpace(enum.Attribute)
				if attribute == "" {
					if attribute, err = naming.Fragment(enum.Field); err != nil {
						return fmt.Errorf("%s.%s: %w", enum.Type, enum.Field, err)
					}
				}

				var result command.DefineResult
				if err := define.Execute(cmd.Context(), command.DefineInput{
					Host:      class,
					Attribute: attribute,
					Choices:   choices,
					Options:   types.Options(enum.Options),
					Result:    &result,
				}); err != nil {
					return fmt.Errorf("%s.%s: %w", enum.Type, enum.Field, err)
				}

				fmt.Fprintf(out, "%s.%s (%s)\n", enum.Type, enum.Field, result.Attribute)
				if result.Constant != "" {
					fmt.Fprintf(out, "  constant:   %s\n", result.Constant)
				}
				if len(result.Predicates) > 0 {
					fmt.Fprintf(out, "  predicates: %s\n", strings.Join(result.Predicates, ", "))
				}
				if len(result.Scopes) > 0 {
					fmt.Fprintf(out, "  scopes:     %s\n", strings.Join(result.Scopes, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "enums.yaml", "Enum definition file (YAML)")
	return cmd
}
