package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/content"
	topicstore "github.com/dalemusser/learnhub/internal/app/store/topics"
	"github.com/dalemusser/learnhub/internal/app/system/indexes"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Validate and publish content trees",
	}
	cmd.AddCommand(newValidateCmd(), newSeedCmd())
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every content file against its schema and the catalog rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := content.Read(contentFS())
			if err != nil {
				return err
			}
			c, err := catalog.New(b.Topics, b.Contents)
			if err != nil {
				return err
			}
			withContent, total := c.Coverage()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d topics, %d with content\n",
				okStyle.Render("ok"), total, withContent)
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var uri, db string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the topics stored in MongoDB with the content tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wafflemongo.ValidateURI(uri); err != nil {
				return fmt.Errorf("invalid --mongo-uri: %w", err)
			}
			logger := newLogger()

			b, err := content.Read(contentFS())
			if err != nil {
				return err
			}
			if _, err := catalog.New(b.Topics, b.Contents); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
			if err != nil {
				return fmt.Errorf("mongo connect: %w", err)
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			database := client.Database(db)
			if err := indexes.EnsureAll(ctx, database, logger); err != nil {
				return err
			}
			if err := topicstore.New(database).ReplaceAll(ctx, b); err != nil {
				return err
			}
			logger.Info("seeded", zap.String("database", db), zap.Int("topics", len(b.Topics)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s seeded %d topics and %d content records into %s\n",
				okStyle.Render("ok"), len(b.Topics), len(b.Contents), db)
			return nil
		},
	}
	cmd.Flags().StringVar(&uri, "mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
	cmd.Flags().StringVar(&db, "db", "learnhub", "MongoDB database name")
	return cmd
}
