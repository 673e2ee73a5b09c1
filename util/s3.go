package util

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func GetS3Client(u *url.URL) (*minio.Client, error) {

	useSSL := false
	if u.Scheme == "s3+https" {
		useSSL = true
	}

	accessKeyID := os.Getenv("AWS_ACCESS_KEY_ID")
	if accessKeyID == "" {
		return nil, fmt.Errorf("AWS_ACCESS_KEY_ID not set")
	}
	secretAccessKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if secretAccessKey == "" {
		return nil, fmt.Errorf("AWS_SECRET_ACCESS_KEY not set")
	}

	mc, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	return mc, err
}

func GetS3URL(path string) (*url.URL, error) {
	if strings.HasPrefix(path, "s3+http://") || strings.HasPrefix(path, "s3+https://") {
		return url.Parse(path)
	}
	return nil, fmt.Errorf("not an s3+http(s) url: %s", path)
}

// SplitBucketPath breaks the path element of an s3 url into bucket name
// and object prefix.
func SplitBucketPath(u *url.URL) (string, string) {
	tmp := strings.SplitN(u.Path, "/", 3)
	bucket := ""
	if len(tmp) > 1 {
		bucket = tmp[1]
	}
	prefix := ""
	if len(tmp) > 2 {
		prefix = tmp[2]
	}
	return bucket, prefix
}
