package report_upload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/openuc2/setupdb/logger"
	"github.com/openuc2/setupdb/manifest"
	"github.com/openuc2/setupdb/util"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "report-upload <manifest> <s3+http[s]://host/bucket/prefix>",
	Short: "Upload analysis outputs listed in a manifest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifestPath := args[0]
		dstBase := args[1]

		data, err := os.ReadFile(manifestPath)
		if err != nil {
			return err
		}
		mfile := manifest.Manifest{}
		if err := yaml.Unmarshal(data, &mfile); err != nil {
			return fmt.Errorf("failed to parse manifest %s: %w", manifestPath, err)
		}

		dstURL, err := util.GetS3URL(dstBase)
		if err != nil {
			return err
		}
		mc, err := util.GetS3Client(dstURL)
		if err != nil {
			return err
		}

		bucketName, prefix := util.SplitBucketPath(dstURL)

		for _, output := range mfile.Outputs {
			key := filepath.Join(prefix, output.Path)
			stats, err := mc.StatObject(cmd.Context(), bucketName, key, minio.GetObjectOptions{})
			if err == nil && uint64(stats.Size) == output.Size {
				logger.Info("already uploaded", "key", key, "size", stats.Size)
				continue
			}
			info, err := mc.FPutObject(cmd.Context(), bucketName, key, output.Path, minio.PutObjectOptions{})
			if err != nil {
				logger.Error("upload failed", "key", key, "error", err)
				return err
			}
			logger.Info("uploaded", "key", key, "size", info.Size)
		}

		return nil
	},
}
