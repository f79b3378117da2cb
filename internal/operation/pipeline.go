package operation

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"
)

// Pipeline applies an ordered list of operations to an image.
type Pipeline struct {
	log *zap.SugaredLogger
}

// NewPipeline returns a pipeline logging through log. A nil logger disables
// logging.
func NewPipeline(log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{log: log}
}

// Run applies ops to img strictly in order, each step consuming the previous
// step's output. The first failure stops execution immediately and is
// returned to the caller; there are no partial results, rollbacks or
// retries. At most one image buffer is live at any time.
func (p *Pipeline) Run(img image.Image, ops []Operation) (image.Image, error) {
	for i, op := range ops {
		start := time.Now()

		next, err := op.Apply(img)
		if err != nil {
			return nil, fmt.Errorf("step %d/%d: %w", i+1, len(ops), err)
		}

		bounds := next.Bounds()
		p.log.Debugw("applied operation",
			"step", i+1,
			"operation", op.Name(),
			"width", bounds.Dx(),
			"height", bounds.Dy(),
			"duration", time.Since(start),
		)
		img = next
	}
	return img, nil
}
