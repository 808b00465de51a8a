// ABOUTME: Tagged image references for project edit buffers
// ABOUTME: Serializes mixed remote-URL / local-file lists into multipart form fields

package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// ImageKind tags an ImageRef as an already-uploaded remote URL or a local
// file pending upload.
type ImageKind int

const (
	ImageExisting ImageKind = iota
	ImagePending
)

// ImageRef is one entry in a project's ordered image list. The backend
// needs existing URLs and new files under different form fields, so the
// two cases stay an explicit tag instead of a runtime type check.
type ImageRef struct {
	Kind ImageKind
	URL  string // set when Kind == ImageExisting
	Path string // set when Kind == ImagePending
}

// ExistingImage tags a remote URL the backend should retain unchanged.
func ExistingImage(url string) ImageRef {
	return ImageRef{Kind: ImageExisting, URL: url}
}

// PendingImage tags a local file to be uploaded at submit time.
func PendingImage(path string) ImageRef {
	return ImageRef{Kind: ImagePending, Path: path}
}

// Display returns a short preview label for the entry. For pending files
// the size is read on demand and never cached.
func (r ImageRef) Display() string {
	switch r.Kind {
	case ImageExisting:
		return r.URL
	case ImagePending:
		name := filepath.Base(r.Path)
		if info, err := os.Stat(r.Path); err == nil {
			return fmt.Sprintf("%s (%d bytes, new)", name, info.Size())
		}
		return name + " (new)"
	}
	return ""
}

// writeImages appends every existing URL under "image_urls" and streams
// every pending file under "images", preserving relative order within
// each field.
func writeImages(w *multipart.Writer, images []ImageRef) error {
	for _, img := range images {
		switch img.Kind {
		case ImageExisting:
			if err := w.WriteField("image_urls", img.URL); err != nil {
				return err
			}
		case ImagePending:
			f, err := os.Open(img.Path)
			if err != nil {
				return fmt.Errorf("failed to open image %s: %w", img.Path, err)
			}
			part, err := w.CreateFormFile("images", filepath.Base(img.Path))
			if err != nil {
				f.Close()
				return err
			}
			if _, err := io.Copy(part, f); err != nil {
				f.Close()
				return fmt.Errorf("failed to read image %s: %w", img.Path, err)
			}
			f.Close()
		}
	}
	return nil
}
