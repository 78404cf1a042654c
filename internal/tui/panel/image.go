package panel

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// Image references a displayable asset.
type Image struct {
	Src string
	Alt string
	// Placeholder is true when the original source could not be loaded.
	Placeholder bool
}

// Render draws the image as a labelled frame. Terminals cannot show the
// bitmap itself.
func (img Image) Render() string {
	label := img.Alt
	if label == "" {
		label = img.Src
	}
	if img.Placeholder {
		return styles.Muted.Render(fmt.Sprintf("[ %s ]", label))
	}
	return styles.Secondary.Render(fmt.Sprintf("[ %s ]", label))
}

// ImageResolver checks image sources against a filesystem and substitutes
// a placeholder for anything that cannot be opened.
type ImageResolver struct {
	fs             afero.Fs
	placeholderSrc string
	placeholderAlt string
}

// NewImageResolver creates a resolver. A nil fs resolves every image to
// the placeholder.
func NewImageResolver(fs afero.Fs, placeholderSrc, placeholderAlt string) *ImageResolver {
	if placeholderAlt == "" {
		placeholderAlt = "Image unavailable"
	}
	return &ImageResolver{fs: fs, placeholderSrc: placeholderSrc, placeholderAlt: placeholderAlt}
}

// Resolve returns img unchanged if its source is a readable file and the
// placeholder otherwise.
func (r *ImageResolver) Resolve(src, alt string) Image {
	if r == nil {
		return Image{Src: src, Alt: alt}
	}
	if src != "" && r.fs != nil {
		if f, err := r.fs.Open(src); err == nil {
			info, statErr := f.Stat()
			_ = f.Close()
			if statErr == nil && !info.IsDir() {
				return Image{Src: src, Alt: alt}
			}
		}
	}
	return Image{Src: r.placeholderSrc, Alt: r.placeholderAlt, Placeholder: true}
}
