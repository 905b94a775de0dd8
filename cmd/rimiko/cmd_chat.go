package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rimiko/showcase/internal/app"
	"github.com/rimiko/showcase/internal/chat"
	"github.com/rimiko/showcase/internal/i18n"
	"github.com/rimiko/showcase/internal/pref"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the chat widget one question",
		Long: `Ask the chat widget one question and print the answer.

Built-in rules answer first, then the optional Lua rule script, then the
configured remote model. Without an answer the canned reply is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := app.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer logger.Sync()

			store := openPrefs(cmd)
			if tag, _ := cmd.Flags().GetString("lang"); tag != "" {
				// A one-off language must not overwrite the saved one.
				store = pref.NewMemoryStore()
				if err := store.Set(pref.KeyLanguage, string(i18n.Resolve(tag))); err != nil {
					return err
				}
			}
			tr, err := i18n.New(store)
			if err != nil {
				return err
			}

			opts := []chat.Option{
				chat.WithLogger(app.WithComponent(logger, "chat")),
				chat.WithTimeout(cfg.ChatTimeout()),
				chat.WithSystemPrompt(cfg.Chat.SystemPrompt),
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			completer, err := chat.NewCompleter(ctx, cfg.ChatProvider())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: remote chat disabled:", err)
			} else if completer != nil {
				opts = append(opts, chat.WithCompleter(completer))
			}
			if cfg.Chat.Script != "" {
				script, err := chat.LoadScript(cfg.Chat.Script, 0)
				if err != nil {
					return err
				}
				defer script.Close()
				opts = append(opts, chat.WithScript(script))
			}

			bot, err := chat.New(tr, opts...)
			if err != nil {
				return err
			}
			reply := bot.Reply(ctx, strings.Join(args, " "))

			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "source: %s, conversation: %s\n", reply.Source, bot.ID())
			}
			return nil
		},
	}

	cmd.Flags().String("lang", "", "Answer in this language without changing the preference")
	cmd.Flags().BoolP("verbose", "v", false, "Print where the answer came from")
	return cmd
}
