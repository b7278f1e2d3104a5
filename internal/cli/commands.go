package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/journal/internal/gateway"
	"github.com/Makepad-fr/journal/internal/model"
	"github.com/Makepad-fr/journal/internal/ui"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, usagef("not an entry id: %s", s)
	}
	return id, nil
}

func notFound(id int64) error {
	return fmt.Errorf("entry not found: %d", id)
}

func (a *app) lsCmd() *cobra.Command {
	var importantOnly, group bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List entries",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			entries := s.store.Filter(importantOnly)

			lines := []string{header(s.store.ImportantCount(), s.store.Len())}
			lines = append(lines, ui.C(ui.Current().Muted, ui.Bar(s.store.ImportantCount(), s.store.Len(), 28)))
			lines = append(lines, ui.C(ui.Current().Muted, s.mode.Notice()), "")
			if group && !importantOnly {
				lines = append(lines, groupLines(entries)...)
			} else {
				lines = append(lines, flatLines(entries)...)
			}
			lines = append(lines, "", ui.C(ui.Current().Muted, `Tip: add with journal add "Title" "Body"`))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}

	cmd.Flags().BoolVar(&importantOnly, "important", false, "show important entries only")
	cmd.Flags().BoolVar(&group, "group", false, "group output by important/other")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	var title, body string

	cmd := &cobra.Command{
		Use:   "add [title] [body...]",
		Short: "Add an entry",
		Example: `  journal add "Rainy Sunday" "Stayed in and read all afternoon."
  journal add --title "Rainy Sunday" --body "Stayed in."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if cmd.Flags().Changed("title") || cmd.Flags().Changed("body") {
					return usagef("give the entry either as arguments or with --title/--body")
				}
				title, body = args[0], strings.Join(args[1:], " ")
			}
			if err := model.Validate(title, body); err != nil {
				return err
			}

			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			e := s.store.Create(title, body)
			s.mirror(cmd.Context(), gateway.OpCreate, e)
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d %s", e.ID, ui.Truncate(e.Title, 60)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "entry title")
	cmd.Flags().StringVar(&body, "body", "", "entry body")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var title, body string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an entry's title or body",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			cur, ok := s.store.Get(id)
			if !ok {
				return notFound(id)
			}
			if !cmd.Flags().Changed("title") {
				title = cur.Title
			}
			if !cmd.Flags().Changed("body") {
				body = cur.Body
			}
			if err := model.Validate(title, body); err != nil {
				return err
			}

			e, _ := s.store.Update(id, title, body)
			s.mirror(cmd.Context(), gateway.OpUpdate, e)
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("updated #%d %s", e.ID, ui.Truncate(e.Title, 60)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&body, "body", "", "new body")
	return cmd
}

func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an entry",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			e, ok := s.store.Delete(id)
			if !ok {
				return notFound(id)
			}
			s.mirror(cmd.Context(), gateway.OpDelete, e)
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("deleted #%d, %d left", e.ID, s.store.Len()))
			return nil
		},
	}
}

// star is local only; importance is never sent to the remote.
func (a *app) starCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "star <id>",
		Short: "Toggle an entry's important flag",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			e, ok := s.store.ToggleImportant(id)
			if !ok {
				return notFound(id)
			}
			verb := "unstarred"
			if e.Important {
				verb = "starred"
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s #%d %s", verb, e.ID, ui.Truncate(e.Title, 60)))
			return nil
		},
	}
}
