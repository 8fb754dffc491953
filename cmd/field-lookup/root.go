package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"field-lookup/internal/mapping"
	"field-lookup/internal/registry"
)

var errNoMapping = errors.New("no mapping file given (use --mapping)")

// app carries the persistent flags and the state derived from them.
type app struct {
	mappingPath string
	logLevel    string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "field-lookup",
		Short:        "Resolve field names against a field type mapping",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.mappingPath, "mapping", "m", "", "path to the YAML mapping file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newGetCmd(a),
		newMatchCmd(a),
		newListCmd(a),
		newValidateCmd(a),
		newDumpCmd(a),
		newStatsCmd(a),
	)

	return root
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

func (a *app) loadFile() (*mapping.File, error) {
	if a.mappingPath == "" {
		return nil, errNoMapping
	}

	return mapping.LoadFile(a.mappingPath)
}

// loadRegistry compiles the mapping file and publishes it as the first
// version of a new registry.
func (a *app) loadRegistry(ctx context.Context) (*registry.Registry, error) {
	f, err := a.loadFile()
	if err != nil {
		return nil, err
	}

	groups, err := mapping.Compile(f)
	if err != nil {
		return nil, err
	}

	reg := registry.New(registry.WithLogger(a.logger))

	v, err := reg.Apply(ctx, groups)
	if err != nil {
		return nil, err
	}

	a.logger.Info("mapping loaded",
		slog.String("path", a.mappingPath),
		slog.Int("groups", len(groups)),
		slog.String("version", v.ID.String()),
	)

	return reg, nil
}
