package cherrybomb

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/dependencies"
	"github.com/lerenn/cherrybomb/pkg/issue"
	"github.com/lerenn/cherrybomb/pkg/logger"
	"github.com/lerenn/cherrybomb/pkg/tracker"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=cherrybomb.go -destination=mocks/cherrybomb.gen.go -package=mocks

// Cherrybomb interface provides the technical debt filing operations.
type Cherrybomb interface {
	// ListProjects lists the projects issues can be filed in.
	ListProjects(ctx context.Context) ([]tracker.Project, error)
	// TagDebt files a selection of code as a technical debt issue.
	TagDebt(ctx context.Context, params TagDebtParams) (*issue.Info, error)
	// Init writes the configuration file.
	Init(opts InitOpts) error
	// ShowConfig returns the effective configuration with secrets masked.
	ShowConfig() (config.Config, error)
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewCherrybombParams contains parameters for creating a new Cherrybomb instance.
type NewCherrybombParams struct {
	Dependencies *dependencies.Dependencies
	// Output receives previews and init summaries. Defaults to stdout.
	Output io.Writer
}

type realCherrybomb struct {
	deps *dependencies.Dependencies
	out  io.Writer
}

// NewCherrybomb creates a new Cherrybomb instance.
func NewCherrybomb(params NewCherrybombParams) (Cherrybomb, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	return &realCherrybomb{
		deps: deps,
		out:  out,
	}, nil
}

// SetLogger sets the logger for this instance.
func (c *realCherrybomb) SetLogger(logger logger.Logger) {
	c.deps.Logger = logger
}

// execute runs an operation with a logger tagged by a fresh operation ID.
func (c *realCherrybomb) execute(operation string, fn func(log logger.Logger) error) error {
	log := c.deps.Logger.
		With("operation", operation).
		With("operation_id", uuid.NewString())

	log.Logf("Starting %s", operation)

	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operation, r)
			}
		}()
		resultErr = fn(log)
	}()

	if resultErr != nil {
		log.Errorf("%s failed: %v", operation, resultErr)
		return resultErr
	}

	log.Logf("%s completed", operation)
	return nil
}
