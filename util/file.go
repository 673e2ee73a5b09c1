package util

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
)

func Exists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

func IsDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func FileSize(path string) uint64 {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return uint64(fileInfo.Size())
}

var sha1Size int64 = 1024

// QuickSHA1 hashes the first and last 1KB of a file. Cheap content
// fingerprint for the output manifest, not a full-file digest.
func QuickSHA1(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	finfo, err := f.Stat()
	if err != nil {
		return "", err
	}
	s := sha1.New()
	if finfo.Size() < sha1Size*2 {
		if _, err := io.Copy(s, f); err != nil {
			return "", err
		}
		return fmt.Sprintf("%x", s.Sum(nil)), nil
	}

	buf := make([]byte, sha1Size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return "", err
	}
	s.Write(buf)
	if _, err := f.Seek(-sha1Size, io.SeekEnd); err != nil {
		return "", err
	}
	if _, err := io.ReadFull(f, buf); err != nil {
		return "", err
	}
	s.Write(buf)
	return fmt.Sprintf("%x", s.Sum(nil)), nil
}
