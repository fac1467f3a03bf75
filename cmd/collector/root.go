package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

const defaultProfile = "local"

// cli holds the global flags and output streams shared by every command.
type cli struct {
	human     bool
	profile   string
	configDir string
	envFile   string

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "collector",
		Short: "Fill in and submit a project entry",
		Long: `collector edits the project entry kept in the local draft slot and
submits it to the collector endpoint.

All commands print the resulting form state as JSON by default. Use --human
for a readable summary.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.loadEnv()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&c.human, "human", false, "Use human-readable output instead of JSON")
	flags.StringVar(&c.profile, "profile", defaultProfile, "Configuration profile (configs/<profile>.yaml)")
	flags.StringVar(&c.configDir, "config-dir", "", "Directory holding the configuration files")
	flags.StringVar(&c.envFile, "env-file", ".env", "Dotenv file with APP_* overrides; skipped when absent")

	root.AddCommand(
		newShowCmd(c),
		newSetCmd(c),
		newResourceCmd(c),
		newSubmitCmd(c),
		newClearCmd(c),
	)
	return root
}

// loadEnv applies the dotenv file. Variables already set in the environment
// win over the file.
func (c *cli) loadEnv() error {
	if c.envFile == "" {
		return nil
	}
	if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &configError{err: fmt.Errorf("loading %s: %w", c.envFile, err)}
	}
	return nil
}

// withEngine opens the engine, runs fn, and closes the engine. A close
// failure is only logged; the command's own outcome decides the exit code.
func (c *cli) withEngine(ctx context.Context, fn func(ports.FormService) error) error {
	eng, err := openEngine(ctx, c.profile, c.configDir, c.stderr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := eng.Close(); cerr != nil {
			slog.New(slog.NewTextHandler(c.stderr, nil)).Warn("draft store close failed", slog.Any("error", cerr))
		}
	}()
	return fn(eng.svc)
}

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current form state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withEngine(cmd.Context(), func(svc ports.FormService) error {
				return c.printState(svc.Snapshot(cmd.Context()))
			})
		},
	}
}

func newSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a field and validate it",
		Long: `Set a scalar field and validate it, as if the field had been edited and
then left.

Fields: name, whatsapp, linkedin, email, codebase, demo, title, description,
problemStatement. An empty value clears the field.

Example:
  collector set email ada@example.com`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := submission.ParseField(args[0])
			if err != nil {
				return err
			}
			return c.withEngine(cmd.Context(), func(svc ports.FormService) error {
				ctx := cmd.Context()
				if _, err := svc.SetField(ctx, field, args[1]); err != nil {
					return err
				}
				state, err := svc.BlurField(ctx, field)
				if err != nil {
					return err
				}
				return c.printState(state)
			})
		},
	}
}

func newResourceCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage the resource list",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Append a blank resource and print its id",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withEngine(cmd.Context(), func(svc ports.FormService) error {
					item, state := svc.AddResource(cmd.Context())
					return c.printAdded(item, state)
				})
			},
		},
		&cobra.Command{
			Use:   "set <id> <remark|link> <value>",
			Short: "Set a resource's remark or link and validate it",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				field := submission.ResourceField(args[1])
				if !field.IsValid() {
					return &domain.ValidationError{
						Fields: map[string]string{"field": fmt.Sprintf("must be remark or link, got %q", args[1])},
					}
				}
				return c.withEngine(cmd.Context(), func(svc ports.FormService) error {
					ctx := cmd.Context()
					if _, err := svc.UpdateResource(ctx, args[0], field, args[2]); err != nil {
						return err
					}
					state, err := svc.BlurResource(ctx, args[0])
					if err != nil {
						return err
					}
					return c.printState(state)
				})
			},
		},
		&cobra.Command{
			Use:     "rm <id>",
			Aliases: []string{"remove"},
			Short:   "Remove a resource",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withEngine(cmd.Context(), func(svc ports.FormService) error {
					state, err := svc.RemoveResource(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					return c.printState(state)
				})
			},
		},
		&cobra.Command{
			Use:     "mv <id> <position>",
			Aliases: []string{"move"},
			Short:   "Move a resource to a zero-based position",
			Long: `Move a resource to a zero-based position. Positions past either end of
the list move the resource to that end.`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				pos, err := strconv.Atoi(args[1])
				if err != nil {
					return &domain.ValidationError{
						Fields: map[string]string{"position": "must be an integer"},
					}
				}
				return c.withEngine(cmd.Context(), func(svc ports.FormService) error {
					state, err := svc.MoveResource(cmd.Context(), args[0], pos)
					if err != nil {
						return err
					}
					return c.printState(state)
				})
			},
		},
	)
	return cmd
}

func newSubmitCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Validate the record and send it to the collector",
		Long: `Validate every field and, if the record passes, send it to the collector.
On success the project fields are cleared and the contributor fields kept.

Exit status is 3 when validation rejects the record and 4 when the collector
could not be reached in time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withEngine(cmd.Context(), func(svc ports.FormService) error {
				state, err := svc.Submit(cmd.Context())
				if err != nil {
					return &stateError{err: err, state: state}
				}
				return c.printState(state)
			})
		},
	}
}

func newClearCmd(c *cli) *cobra.Command {
	var projectOnly bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the form",
		Long: `Clear the whole form and the draft slot. With --project, keep the
contributor fields (name, whatsapp, linkedin, email).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withEngine(cmd.Context(), func(svc ports.FormService) error {
				if projectOnly {
					return c.printState(svc.ResetProjectFields(cmd.Context()))
				}
				return c.printState(svc.ResetAll(cmd.Context()))
			})
		},
	}
	cmd.Flags().BoolVar(&projectOnly, "project", false, "Keep the contributor fields")
	return cmd
}
