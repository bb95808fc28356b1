/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/nakachan-ing/taskflow-cli/internal/model"
	"github.com/nakachan-ing/taskflow-cli/internal/store"
	"github.com/nakachan-ing/taskflow-cli/internal/util"
)

const (
	tasksS3Key      = "data/tasks.json"
	categoriesS3Key = "data/categories.json"
)

type syncTarget struct {
	localPath string
	s3Key     string
}

func syncTargets(config model.Config) []syncTarget {
	return []syncTarget{
		{localPath: store.TasksJsonPath(config), s3Key: tasksS3Key},
		{localPath: store.CategoriesJsonPath(config), s3Key: categoriesS3Key},
	}
}

// SyncWithS3 mirrors the data blobs to or from the configured bucket.
// The whole collection is one JSON file per entity, so no per-file diff
// is needed, each blob is pushed or pulled wholesale.
func SyncWithS3(config model.Config, direction string) error {
	if !config.Sync.Enable {
		return fmt.Errorf("sync is disabled in config.yaml (set sync.enable: true)")
	}

	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to create S3 client: %w", err)
	}

	for _, target := range syncTargets(config) {
		switch direction {
		case "push":
			if _, err := os.Stat(target.localPath); os.IsNotExist(err) {
				log.Printf("⚠️ %s does not exist locally, skipping", target.localPath)
				continue
			}
			if err := util.UploadToS3(s3Client, config.Sync.Bucket, target.localPath, target.s3Key); err != nil {
				return err
			}
		case "pull":
			_, exists, err := util.RemoteModTime(s3Client, config.Sync.Bucket, target.s3Key)
			if err != nil {
				return err
			}
			if !exists {
				log.Printf("⚠️ %s does not exist on S3, skipping", target.s3Key)
				continue
			}
			if err := util.DownloadFromS3(s3Client, config.Sync.Bucket, target.s3Key, target.localPath); err != nil {
				return err
			}
		default:
			return fmt.Errorf("❌ Invalid sync direction: %s", direction)
		}
	}

	return nil
}

func ShowSyncStatus(config model.Config) error {
	if !config.Sync.Enable {
		return fmt.Errorf("sync is disabled in config.yaml (set sync.enable: true)")
	}

	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to create S3 client: %w", err)
	}

	for _, target := range syncTargets(config) {
		localInfo, localErr := os.Stat(target.localPath)
		remoteTime, remoteExists, err := util.RemoteModTime(s3Client, config.Sync.Bucket, target.s3Key)
		if err != nil {
			return err
		}

		switch {
		case os.IsNotExist(localErr) && !remoteExists:
			fmt.Printf("%s: missing locally and on S3\n", target.s3Key)
		case os.IsNotExist(localErr):
			fmt.Printf("%s: only on S3 (pull to fetch)\n", target.s3Key)
		case localErr != nil:
			return fmt.Errorf("❌ Failed to check %s: %w", target.localPath, localErr)
		case !remoteExists:
			fmt.Printf("%s: only local (push to upload)\n", target.s3Key)
		case localInfo.ModTime().After(remoteTime):
			fmt.Printf("%s: local is newer (push to upload)\n", target.s3Key)
		case remoteTime.After(localInfo.ModTime()):
			fmt.Printf("%s: S3 is newer (pull to fetch)\n", target.s3Key)
		default:
			fmt.Printf("%s: in sync\n", target.s3Key)
		}
	}

	return nil
}
