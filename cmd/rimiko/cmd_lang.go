package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rimiko/showcase/internal/app"
	"github.com/rimiko/showcase/internal/i18n"
)

func newLangCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "lang [en|vi]",
		Short:     "Show or set the interface language",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(i18n.English), string(i18n.Vietnamese)},
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := i18n.New(openPrefs(cmd))
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), tr.Language())
				return nil
			}

			lang := i18n.Language(strings.ToLower(strings.TrimSpace(args[0])))
			if err := tr.Apply(lang); err != nil {
				return app.NewOperationError("set", "language", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.Language())
			return nil
		},
	}
}
