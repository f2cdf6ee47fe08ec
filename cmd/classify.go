package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hgbridge/internal/config"
	"hgbridge/internal/remote"
	"hgbridge/pkg/domain"
	"hgbridge/pkg/logger"
	"hgbridge/pkg/serrors"
)

// classifyCommand decides which transport a remote location string needs and
// prints it ("ssh", "http" or "local"). SSH shorthand hosts are run through
// the argument-injection guard before anything would be handed to an SSH
// client; an unsafe host aborts the command.
func classifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <location>",
		Short: "Classify a remote location string and vet its host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			location := args[0]

			transport := remote.Classify(location)
			if transport == domain.TransportSSH {
				endpoint, ok := remote.SplitEndpoint(location)
				if !ok {
					// classification implies a shorthand match
					return serrors.With(serrors.ErrInternal, "could not split endpoint %q", location)
				}
				if err := remote.CheckSafeHost(endpoint.Host); err != nil {
					logger.Error(ctx, "rejecting remote location",
						zap.String("location", location),
						zap.Error(err))

					return err
				}

				logger.Debug(ctx, "ssh transport selected",
					zap.String("host", endpoint.Host),
					zap.String("path", endpoint.Path),
					zap.String("client", cfg.SSH.Command))
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.ToLower(string(transport)))

			return nil
		},
	}

	return cmd
}
