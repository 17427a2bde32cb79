package avatar

import (
	"bytes"
	"fmt"
	"image"

	// Decoders for the formats GitHub serves avatars in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Size is the maximum width and height of a thumbnail in pixels.
const Size = 60

// Process turns raw image bytes into a circular PNG thumbnail. The source is
// composited through a filled ellipse spanning its bounds, which leaves the
// corners transparent, and then shrunk with Lanczos resampling so neither
// side exceeds [Size]. Aspect ratio is preserved and smaller images are not
// enlarged. The output is deterministic for identical input.
func Process(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode avatar: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("decode avatar: empty image")
	}

	dc := gg.NewContext(w, h)
	dc.DrawEllipse(float64(w)/2, float64(h)/2, float64(w)/2, float64(h)/2)
	dc.Clip()
	dc.DrawImage(src, -b.Min.X, -b.Min.Y)

	thumb := imaging.Fit(dc.Image(), Size, Size, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode avatar: %w", err)
	}
	return buf.Bytes(), nil
}
