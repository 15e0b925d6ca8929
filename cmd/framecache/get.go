package main

import (
	"encoding/json"

	"github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <descriptor> <name>...",
		Short: "Print frames by name or alias",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := a.newCache()
			if err != nil {
				return err
			}
			if _, err := a.loadAll(cmd.Context(), cache, args[:1]); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			var missing []string
			for _, name := range args[1:] {
				v, ok := viewOf(cache, name)
				if !ok {
					missing = append(missing, name)
					continue
				}
				if err := enc.Encode(v); err != nil {
					return err
				}
			}
			if len(missing) > 0 {
				return errors.WithContext(
					errors.New(errors.CodeNotFound, "frame not found"),
					"names", missing)
			}
			return nil
		},
	}
}
