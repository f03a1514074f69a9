package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ztrade/launchweek/launch"
)

// seedFile is the YAML layout read by the seed command.
type seedFile struct {
	Launches []launch.Fields `yaml:"launches"`
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create launches from a YAML file",
		Long: `Create launches from a YAML file. Each launch goes through the normal
create path, so validation applies and activity is recorded.

Example file:
  launches:
    - title: Vector Search in Postgres
      status: Shipped
      launch_date: "2025-08-11"
      owner: Emma
      tags: [ai, postgres]
      checklist: {blog: true, docs: true}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := openService(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			entries, err := parseSeed(data)
			if err != nil {
				return err
			}
			created, err := seedLaunches(cmd.Context(), svc, entries)
			fmt.Fprintf(cmd.OutOrStdout(), "created %d of %d launches\n", created, len(entries))
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with a top-level 'launches' list")
	cmd.MarkFlagRequired("file")
	return cmd
}

func parseSeed(data []byte) ([]launch.Fields, error) {
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return sf.Launches, nil
}

// seedLaunches creates every valid entry, skipping invalid ones. It stops at
// the first backend failure.
func seedLaunches(ctx context.Context, svc *launch.Service, entries []launch.Fields) (int, error) {
	created := 0
	for i, f := range entries {
		l, err := svc.Create(ctx, f)
		if err != nil {
			if launch.IsValidation(err) {
				log.WithField("entry", i).Warnf("skipping invalid launch: %s", err.Error())
				continue
			}
			return created, err
		}
		log.WithFields(log.Fields{"id": l.ID, "title": l.Title}).Debug("seeded launch")
		created++
	}
	return created, nil
}
