package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/system/tabs"
	"github.com/spf13/cobra"
)

func newTopicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Browse the topic catalog",
	}
	cmd.AddCommand(newTopicsListCmd(), newTopicsShowCmd())
	return cmd
}

func newTopicsListCmd() *cobra.Command {
	var q, category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List topics, optionally filtered by text and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(newLogger())
			if err != nil {
				return err
			}
			writeList(cmd.OutOrStdout(), c, c.Search(q, category))
			return nil
		},
	}
	cmd.Flags().StringVarP(&q, "query", "q", "", "text to match in title or description")
	cmd.Flags().StringVarP(&category, "category", "c", "All", "All, Basic, Intermediate or Advanced")
	return cmd
}

func newTopicsShowCmd() *cobra.Command {
	var section string
	var plain bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a topic's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sections []tabs.Section
			if section == "" || section == "all" {
				sections = tabs.Sections
			} else {
				s, err := tabs.Parse(section)
				if err != nil {
					return err
				}
				sections = []tabs.Section{s}
			}

			c, err := loadCatalog(newLogger())
			if err != nil {
				return err
			}
			tc, ok := c.Resolve(args[0])
			if !ok {
				return notFoundError(c, args[0])
			}

			md := topicMarkdown(tc, sections)
			if plain {
				_, err = io.WriteString(cmd.OutOrStdout(), md)
				return err
			}
			out, err := renderMarkdown(md)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", "all", "overview, examples, exercises, summary or all")
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown")
	return cmd
}

func notFoundError(c *catalog.Catalog, id string) error {
	var names []string
	for _, t := range c.Suggest(id, 3) {
		names = append(names, t.ID)
	}
	if len(names) == 0 {
		return fmt.Errorf("topic %q not found", id)
	}
	return fmt.Errorf("topic %q not found (did you mean %s?)", id, strings.Join(names, ", "))
}
