package operation

import (
	"image"
	"image/color"
	"testing"
)

func newGradientCanvas(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 255 / (w + h)),
				A: 255,
			})
		}
	}
	return img
}

func samePixels(t *testing.T, a, b image.Image) bool {
	t.Helper()
	if a.Bounds() != b.Bounds() {
		return false
	}
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				return false
			}
		}
	}
	return true
}

func TestGrayscale_Idempotent(t *testing.T) {
	img := newGradientCanvas(40, 40)

	once, err := Grayscale{}.Apply(img)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	twice, err := Grayscale{}.Apply(once)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}

	if !samePixels(t, once, twice) {
		t.Error("applying grayscale twice should equal applying it once")
	}
}

func TestGrayscale_NeverFails(t *testing.T) {
	if _, err := (Grayscale{}).Apply(newCanvas(1, 1)); err != nil {
		t.Errorf("Grayscale failed: %v", err)
	}
}

func TestBlur_PreservesDimensions(t *testing.T) {
	out, err := Blur{Sigma: 2.5}.Apply(newGradientCanvas(40, 30))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := out.Bounds(); got.Dx() != 40 || got.Dy() != 30 {
		t.Errorf("blurred dimensions: got %dx%d, want 40x30", got.Dx(), got.Dy())
	}
}

func TestAdjustBrightness(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}

	out, err := AdjustBrightness{Delta: 51}.Apply(img)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	r, _, _, _ := out.At(0, 0).RGBA()
	got := int(r >> 8)
	if got < 149 || got > 153 {
		t.Errorf("brightened channel = %d, want about 151", got)
	}

	out, err = AdjustBrightness{Delta: -51}.Apply(img)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	r, _, _, _ = out.At(0, 0).RGBA()
	got = int(r >> 8)
	if got < 47 || got > 51 {
		t.Errorf("darkened channel = %d, want about 49", got)
	}
}

func TestInvert_Involution(t *testing.T) {
	img := newGradientCanvas(20, 20)

	once, err := Invert{}.Apply(img)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	twice, err := Invert{}.Apply(once)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}

	if !samePixels(t, img, twice) {
		t.Error("inverting twice should restore the original image")
	}
}

func TestUnsharpen(t *testing.T) {
	out, err := Unsharpen{Radius: 2, Amount: 0.5}.Apply(newGradientCanvas(30, 30))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := out.Bounds(); got.Dx() != 30 || got.Dy() != 30 {
		t.Errorf("sharpened dimensions: got %dx%d, want 30x30", got.Dx(), got.Dy())
	}
}

func TestOperationNames(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{Grayscale{}, "grayscale"},
		{Blur{}, "blur"},
		{AdjustBrightness{}, "adjust-brightness"},
		{Crop{}, "crop"},
		{Resize{}, "resize"},
		{Invert{}, "invert"},
		{Unsharpen{}, "unsharpen"},
	}
	for _, tt := range tests {
		if got := tt.op.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}
