package packaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/penwyp/go-countdown/internal/util"
)

// Viewport used for an SVG without viewBox or width/height, as browsers do
const (
	defaultSVGWidth  = 300
	defaultSVGHeight = 150
)

// DefaultSizes are the square icon sizes an installable web app needs
var DefaultSizes = []int{192, 512}

// IconOptions controls icon generation
type IconOptions struct {
	Source string
	OutDir string
	Sizes  []int

	// Manifest metadata
	Name        string
	ShortName   string
	Description string
	ThemeColor  string
}

func (o *IconOptions) applyDefaults() {
	if len(o.Sizes) == 0 {
		o.Sizes = DefaultSizes
	}
	if o.OutDir == "" {
		o.OutDir = "."
	}
	if o.Name == "" {
		o.Name = "Countdown Timer"
	}
	if o.ShortName == "" {
		o.ShortName = "Countdown"
	}
	if o.Description == "" {
		o.Description = "A countdown timer with loop mode and a start log"
	}
	if o.ThemeColor == "" {
		o.ThemeColor = "#ffffff"
	}
}

// IconFileName returns the file name used for a size, e.g. pwa-192x192.png
func IconFileName(size int) string {
	return fmt.Sprintf("pwa-%dx%d.png", size, size)
}

// DecodeImage reads any registered raster format
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// renderer draws the source artwork as a size x size icon
type renderer interface {
	Render(size int) *image.RGBA
}

type rasterRenderer struct {
	img image.Image
}

func (r rasterRenderer) Render(size int) *image.RGBA {
	return ResizeSquare(r.img, size)
}

type vectorRenderer struct {
	icon *oksvg.SvgIcon
}

func (v vectorRenderer) Render(size int) *image.RGBA {
	return RasterizeSVG(v.icon, size)
}

// IsSVG reports whether the source is an SVG document, by extension or content
func IsSVG(path string, head []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return true
	}
	if len(head) > 512 {
		head = head[:512]
	}
	trimmed := bytes.TrimSpace(head)
	return bytes.HasPrefix(trimmed, []byte("<")) && bytes.Contains(trimmed, []byte("<svg"))
}

// DecodeSVG parses an SVG document. A document without a usable viewBox
// falls back to width/height, then to the 300x150 browser default.
func DecodeSVG(r io.Reader) (*oksvg.SvgIcon, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode svg: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		icon.ViewBox.X, icon.ViewBox.Y = 0, 0
		icon.ViewBox.W, icon.ViewBox.H = defaultSVGWidth, defaultSVGHeight
	}
	return icon, nil
}

// RasterizeSVG renders icon directly at size x size. The viewBox is fitted
// and centred, leaving the margins transparent.
func RasterizeSVG(icon *oksvg.SvgIcon, size int) *image.RGBA {
	vb := icon.ViewBox
	scale := math.Min(float64(size)/vb.W, float64(size)/vb.H)
	w, h := vb.W*scale, vb.H*scale
	icon.SetTarget((float64(size)-w)/2, (float64(size)-h)/2, w, h)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return dst
}

// loadSource opens the icon source as vector or raster artwork
func loadSource(path string) (renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon source: %w", err)
	}

	if IsSVG(path, data) {
		icon, err := DecodeSVG(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		util.LogDebugf("Decoded svg icon with viewBox %gx%g", icon.ViewBox.W, icon.ViewBox.H)
		return vectorRenderer{icon: icon}, nil
	}

	src, format, err := DecodeImage(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("icon source %s is empty", path)
	}
	util.LogDebugf("Decoded %s icon %dx%d", format, src.Bounds().Dx(), src.Bounds().Dy())
	return rasterRenderer{img: src}, nil
}

// ResizeSquare scales src to size x size. A non-square source is cropped
// around its centre first so the icon is filled without distortion.
func ResizeSquare(src image.Image, size int) *image.RGBA {
	b := src.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}

// GenerateIcons renders one PNG per size plus manifest.webmanifest into OutDir
// and returns the written paths.
func GenerateIcons(opts IconOptions) ([]string, error) {
	opts.applyDefaults()

	for _, size := range opts.Sizes {
		if size <= 0 {
			return nil, fmt.Errorf("invalid icon size %d", size)
		}
	}

	src, err := loadSource(opts.Source)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(opts.Sizes)+1)
	icons := make([]ManifestIcon, 0, len(opts.Sizes))
	for _, size := range opts.Sizes {
		name := IconFileName(size)
		path := filepath.Join(opts.OutDir, name)
		if err := writePNG(path, src.Render(size)); err != nil {
			return nil, err
		}
		written = append(written, path)
		icons = append(icons, ManifestIcon{
			Src:   name,
			Sizes: fmt.Sprintf("%dx%d", size, size),
			Type:  "image/png",
		})
	}

	manifestPath := filepath.Join(opts.OutDir, ManifestFileName)
	manifest := Manifest{
		Name:        opts.Name,
		ShortName:   opts.ShortName,
		Description: opts.Description,
		ThemeColor:  opts.ThemeColor,
		Icons:       icons,
	}
	if err := WriteManifest(manifestPath, manifest); err != nil {
		return nil, err
	}
	written = append(written, manifestPath)

	util.LogInfo("Icons generated", util.F("source", opts.Source), util.F("count", len(icons)))
	return written, nil
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return out.Close()
}
