package assets

import (
	"log"
	"os"

	getter "github.com/hashicorp/go-getter"
)

// EnsurePack makes sure an asset pack directory exists locally, fetching it
// from src when missing. src accepts any go-getter URL (http archive,
// git::..., s3, plain file path), so packs can live next to the binary in
// development and behind a release URL when deployed.
func EnsurePack(src, destDir string) error {
	if _, err := os.Stat(destDir); err == nil {
		return nil
	}

	log.Printf("Assets: fetching pack %s -> %s", src, destDir)
	if err := getter.Get(destDir, src); err != nil {
		return err
	}
	log.Printf("Assets: pack ready at %s", destDir)
	return nil
}
