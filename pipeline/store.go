package pipeline

import (
	"image"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// savePNG encodes img into a temp file next to path and renames it over path,
// so the previous file survives any failed write.
func savePNG(img image.Image, path string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err = imaging.Encode(tmp, img, imaging.PNG); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
