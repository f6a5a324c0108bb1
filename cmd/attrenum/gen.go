package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-attrenum/codegen"
	"github.com/spf13/cobra"
)

func genCmd(verbose *bool) *cobra.Command {
	var (
		configPath string
		outPath    string
		pkg        string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go helpers from a YAML definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose, "gen")
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if pkg != "" {
				cfg.Package = pkg
			}

			var buf bytes.Buffer
			if err := codegen.Render(cfg, &buf); err != nil {
				logger.Error("generation failed", err, "config", configPath)
				return err
			}

			if outPath == "" || outPath == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			logger.Info("helpers generated", "out", outPath, "enums", len(cfg.Enums))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "enums.yaml", "Enum definition file (YAML)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&pkg, "package", "", "Override the package name from the config")

	return cmd
}
