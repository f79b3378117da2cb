package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imageless/imageless/internal/codec"
	"github.com/imageless/imageless/internal/operation"
	"github.com/imageless/imageless/internal/unit"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_FullDocument(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
format  = "jpeg"
quality = 85

[[operations]]
type = "grayscale"

[[operations]]
type     = "adjust-brightness"
brighten = 30

[[operations]]
type  = "blur"
sigma = 1.5

[[operations]]
type = "crop"
from = { x = "10", y = "10" }
to   = { anchor = "maximum", x = "20%", y = "20%" }

[[operations]]
type   = "resize"
width  = "50%"
height = "120"
filter = "lanczos3"
mode   = "exact"
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output.Format != codec.FormatJPEG || cfg.Output.Quality != 85 {
		t.Errorf("output: got %+v, want jpeg quality 85", cfg.Output)
	}
	if len(cfg.Operations) != 5 {
		t.Fatalf("got %d operations, want 5", len(cfg.Operations))
	}

	if _, ok := cfg.Operations[0].(operation.Grayscale); !ok {
		t.Errorf("operations[0] is %T, want Grayscale", cfg.Operations[0])
	}

	brightness, ok := cfg.Operations[1].(operation.AdjustBrightness)
	if !ok || brightness.Delta != 30 {
		t.Errorf("operations[1] = %#v, want AdjustBrightness{Delta: 30}", cfg.Operations[1])
	}

	blur, ok := cfg.Operations[2].(operation.Blur)
	if !ok || blur.Sigma != 1.5 {
		t.Errorf("operations[2] = %#v, want Blur{Sigma: 1.5}", cfg.Operations[2])
	}

	crop, ok := cfg.Operations[3].(operation.Crop)
	if !ok {
		t.Fatalf("operations[3] is %T, want Crop", cfg.Operations[3])
	}
	if crop.From.X != unit.Px(10) || crop.From.Y != unit.Px(10) {
		t.Errorf("crop from = %s, want (10px, 10px)", crop.From)
	}
	if crop.To.Anchor != operation.AnchorMaximum {
		t.Errorf("crop anchor = %s, want maximum", crop.To.Anchor)
	}
	if x := crop.To.At.X.ToPixels(100); x != 20 {
		t.Errorf("crop to x resolves to %d on 100, want 20", x)
	}

	resize, ok := cfg.Operations[4].(operation.Resize)
	if !ok {
		t.Fatalf("operations[4] is %T, want Resize", cfg.Operations[4])
	}
	if resize.Filter != operation.FilterLanczos3 || resize.Mode != operation.ModeExact {
		t.Errorf("resize = %#v, want lanczos3/exact", resize)
	}
	if resize.Height != unit.Px(120) {
		t.Errorf("resize height = %s, want 120px", resize.Height)
	}
	if w := resize.Width.ToPixels(200); w != 100 {
		t.Errorf("resize width resolves to %d on 200, want 100", w)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
format = "jpeg"

[[operations]]
type   = "resize"
width  = "100"
height = "100"
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output.Quality != 90 {
		t.Errorf("default quality = %d, want 90", cfg.Output.Quality)
	}

	resize := cfg.Operations[0].(operation.Resize)
	if resize.Filter != operation.FilterNearest {
		t.Errorf("default filter = %s, want nearest", resize.Filter)
	}
	if resize.Mode != operation.ModePreserve {
		t.Errorf("default mode = %s, want preserve", resize.Mode)
	}
}

func TestLoad_EmptyOperationList(t *testing.T) {
	cfg, err := Load(writeConfig(t, `format = "png"`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Operations) != 0 {
		t.Errorf("got %d operations, want 0", len(cfg.Operations))
	}
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			"missing format",
			"[[operations]]\ntype = \"grayscale\"\n",
			"invalid config",
		},
		{
			"unknown format",
			"format = \"bitmap\"\n",
			"unknown output format",
		},
		{
			"quality above range",
			"format = \"jpeg\"\nquality = 150\n",
			"invalid config",
		},
		{
			"negative sigma",
			"format = \"png\"\n[[operations]]\ntype = \"blur\"\nsigma = -1.0\n",
			"invalid config",
		},
		{
			"unknown operation type",
			"format = \"png\"\n[[operations]]\ntype = \"sepia\"\n",
			`unknown operation type "sepia"`,
		},
		{
			"brighten and darken together",
			"format = \"png\"\n[[operations]]\ntype = \"adjust-brightness\"\nbrighten = 10\ndarken = 10\n",
			"not both",
		},
		{
			"brightness without direction",
			"format = \"png\"\n[[operations]]\ntype = \"adjust-brightness\"\n",
			"requires brighten or darken",
		},
		{
			"brightness above 16-bit magnitude",
			"format = \"png\"\n[[operations]]\ntype = \"adjust-brightness\"\nbrighten = 70000\n",
			"invalid config",
		},
		{
			"crop without corners",
			"format = \"png\"\n[[operations]]\ntype = \"crop\"\n",
			"crop requires from and to",
		},
		{
			"unknown anchor",
			"format = \"png\"\n[[operations]]\ntype = \"crop\"\nfrom = { x = \"0\", y = \"0\" }\nto = { anchor = \"center\", x = \"1\", y = \"1\" }\n",
			`unknown crop anchor "center"`,
		},
		{
			"resize without dimensions",
			"format = \"png\"\n[[operations]]\ntype = \"resize\"\n",
			"resize requires width and height",
		},
		{
			"unknown filter",
			"format = \"png\"\n[[operations]]\ntype = \"resize\"\nwidth = \"10\"\nheight = \"10\"\nfilter = \"bicubic\"\n",
			"invalid config",
		},
		{
			"bad unit spelling",
			"format = \"png\"\n[[operations]]\ntype = \"resize\"\nwidth = \"ten\"\nheight = \"10\"\n",
			"invalid pixel count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}

func TestLoad_PercentageOutOfRange(t *testing.T) {
	_, err := Load(writeConfig(t, `
format = "png"

[[operations]]
type   = "resize"
width  = "150%"
height = "10"
`))
	var rangeErr *unit.PercentageRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("got %v, want *PercentageRangeError", err)
	}
	if rangeErr.Value != 1.5 {
		t.Errorf("error carries %v, want 1.5", rangeErr.Value)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
