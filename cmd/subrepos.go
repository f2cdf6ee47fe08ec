package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hgbridge/internal/config"
	"hgbridge/internal/subrepo"
	"hgbridge/pkg/coerce"
)

// subreposCommand resolves the subrepository map and state files of a
// working copy and prints one "name source node" line per subrepository.
// The state file is optional; missing nodes print as "-".
func subreposCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subrepos <working-copy>",
		Short: "List subrepositories with their sources and pinned nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]

			mapFile, err := os.Open(string(coerce.JoinPath(root, cfg.Subrepos.MapFile)))
			if err != nil {
				return fmt.Errorf("could not open subrepository map: %w", err)
			}
			defer mapFile.Close()

			subs, err := subrepo.ParseHgsub(mapFile)
			if err != nil {
				return err
			}

			state := subrepo.New()
			stateFile, err := os.Open(string(coerce.JoinPath(root, cfg.Subrepos.StateFile)))
			if err == nil {
				defer stateFile.Close()
				state, err = subrepo.ParseHgsubstate(stateFile)
				if err != nil {
					return err
				}
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("could not open subrepository state: %w", err)
			}

			for _, name := range subs.Names() {
				source, _ := subs.Get(name)
				node, ok := state.Get(name)
				if !ok {
					node = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", name, source, node)
			}

			return nil
		},
	}

	return cmd
}
