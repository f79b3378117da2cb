package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/imageless/imageless/internal/codec"
	"github.com/imageless/imageless/internal/operation"
	"github.com/imageless/imageless/internal/unit"
)

// Config is a fully decoded and validated processing document.
type Config struct {
	Output     codec.Output
	Operations []operation.Operation
}

// document is the raw TOML shape before units and operations are built.
type document struct {
	Format     string         `mapstructure:"format" validate:"required"`
	Quality    *int           `mapstructure:"quality" default:"90" validate:"omitempty,min=0,max=100"`
	Operations []rawOperation `mapstructure:"operations" validate:"omitempty,dive"`
}

// rawOperation is the union of every operation's fields; the "type"
// discriminator decides which ones are read.
type rawOperation struct {
	Type string `mapstructure:"type" validate:"required"`

	// adjust-brightness: exactly one of these
	Brighten *int `mapstructure:"brighten" validate:"omitempty,min=0,max=65535"`
	Darken   *int `mapstructure:"darken" validate:"omitempty,min=0,max=65535"`

	// blur
	Sigma float64 `mapstructure:"sigma" validate:"gte=0"`

	// crop
	From *rawCoordinate `mapstructure:"from"`
	To   *rawOrigin     `mapstructure:"to"`

	// resize
	Width  string `mapstructure:"width"`
	Height string `mapstructure:"height"`
	Filter string `mapstructure:"filter" default:"nearest" validate:"oneof=nearest triangle catmull-rom gaussian lanczos3"`
	Mode   string `mapstructure:"mode" default:"preserve" validate:"oneof=preserve fill exact"`
}

type rawCoordinate struct {
	X string `mapstructure:"x" validate:"required"`
	Y string `mapstructure:"y" validate:"required"`
}

type rawOrigin struct {
	Anchor string `mapstructure:"anchor" validate:"required"`
	X      string `mapstructure:"x" validate:"required"`
	Y      string `mapstructure:"y" validate:"required"`
}

var validate = validator.New()

// Load reads, validates and builds the processing document at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := defaults.Set(&doc); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	format, err := codec.ParseFormat(doc.Format)
	if err != nil {
		return nil, err
	}

	ops := make([]operation.Operation, 0, len(doc.Operations))
	for i, raw := range doc.Operations {
		op, err := buildOperation(raw)
		if err != nil {
			return nil, fmt.Errorf("operations[%d]: %w", i, err)
		}
		ops = append(ops, op)
	}

	return &Config{
		Output:     codec.Output{Format: format, Quality: *doc.Quality},
		Operations: ops,
	}, nil
}

// buildOperation dispatches on the type discriminator. Adding an operation
// variant means adding a case here and nothing else.
func buildOperation(raw rawOperation) (operation.Operation, error) {
	switch raw.Type {
	case "grayscale":
		return operation.Grayscale{}, nil

	case "blur":
		return operation.Blur{Sigma: raw.Sigma}, nil

	case "adjust-brightness":
		switch {
		case raw.Brighten != nil && raw.Darken != nil:
			return nil, fmt.Errorf("adjust-brightness takes either brighten or darken, not both")
		case raw.Brighten != nil:
			return operation.AdjustBrightness{Delta: *raw.Brighten}, nil
		case raw.Darken != nil:
			return operation.AdjustBrightness{Delta: -*raw.Darken}, nil
		default:
			return nil, fmt.Errorf("adjust-brightness requires brighten or darken")
		}

	case "crop":
		if raw.From == nil || raw.To == nil {
			return nil, fmt.Errorf("crop requires from and to")
		}
		from, err := buildCoordinate(raw.From.X, raw.From.Y)
		if err != nil {
			return nil, fmt.Errorf("crop from: %w", err)
		}
		anchor, err := parseAnchor(raw.To.Anchor)
		if err != nil {
			return nil, err
		}
		at, err := buildCoordinate(raw.To.X, raw.To.Y)
		if err != nil {
			return nil, fmt.Errorf("crop to: %w", err)
		}
		return operation.Crop{
			From: from,
			To:   operation.CropOrigin{Anchor: anchor, At: at},
		}, nil

	case "resize":
		if raw.Width == "" || raw.Height == "" {
			return nil, fmt.Errorf("resize requires width and height")
		}
		width, err := unit.Parse(raw.Width)
		if err != nil {
			return nil, fmt.Errorf("resize width: %w", err)
		}
		height, err := unit.Parse(raw.Height)
		if err != nil {
			return nil, fmt.Errorf("resize height: %w", err)
		}
		filter, err := parseFilter(raw.Filter)
		if err != nil {
			return nil, err
		}
		mode, err := parseMode(raw.Mode)
		if err != nil {
			return nil, err
		}
		return operation.Resize{Width: width, Height: height, Filter: filter, Mode: mode}, nil

	default:
		return nil, fmt.Errorf("unknown operation type %q", raw.Type)
	}
}

func buildCoordinate(x, y string) (unit.Coordinate, error) {
	ux, err := unit.Parse(x)
	if err != nil {
		return unit.Coordinate{}, fmt.Errorf("x: %w", err)
	}
	uy, err := unit.Parse(y)
	if err != nil {
		return unit.Coordinate{}, fmt.Errorf("y: %w", err)
	}
	return unit.Coordinate{X: ux, Y: uy}, nil
}

func parseAnchor(s string) (operation.Anchor, error) {
	switch s {
	case "minimum":
		return operation.AnchorMinimum, nil
	case "maximum":
		return operation.AnchorMaximum, nil
	case "crop-start":
		return operation.AnchorCropStart, nil
	default:
		return 0, fmt.Errorf("unknown crop anchor %q", s)
	}
}

func parseFilter(s string) (operation.Filter, error) {
	switch s {
	case "nearest":
		return operation.FilterNearest, nil
	case "triangle":
		return operation.FilterTriangle, nil
	case "catmull-rom":
		return operation.FilterCatmullRom, nil
	case "gaussian":
		return operation.FilterGaussian, nil
	case "lanczos3":
		return operation.FilterLanczos3, nil
	default:
		return 0, fmt.Errorf("unknown resize filter %q", s)
	}
}

func parseMode(s string) (operation.Mode, error) {
	switch s {
	case "preserve":
		return operation.ModePreserve, nil
	case "fill":
		return operation.ModeFill, nil
	case "exact":
		return operation.ModeExact, nil
	default:
		return 0, fmt.Errorf("unknown resize mode %q", s)
	}
}
