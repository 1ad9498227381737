package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/promplate/partialjson"
)

var (
	watchCmd = &cobra.Command{
		Use:   "watch <file>",
		Short: "Follow a growing file and reprint the completed document on every write",
		Long:  "Follows a file a streaming producer appends to, and prints the amended JSON document each time the file changes. Stop with ctrl-c.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.StandardLogger()

			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument <file>")
			}
			target, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			settings, err := resolveSettings()
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			// watch the directory; the file may be replaced rather than
			// appended to, depending on the producer
			if err := watcher.Add(filepath.Dir(target)); err != nil {
				return err
			}

			reprint := func() {
				buf, err := os.ReadFile(target)
				if err != nil {
					logger.WithError(err).Warn("could not read target")
					return
				}
				amended, err := partialjson.Complete(string(buf), settings)
				if err != nil {
					logger.WithError(err).Warn("could not complete prefix")
					return
				}
				fmt.Println(amended)
			}

			if _, err := os.Stat(target); err == nil {
				reprint()
			}

			logger.WithField("file", target).Info("watching")
			for {
				select {
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.WithError(err).Error("watch error")
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Name != target {
						continue
					}
					if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
						reprint()
					}
				}
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(watchCmd)
}
