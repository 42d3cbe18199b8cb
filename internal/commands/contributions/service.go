package contributions

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/devquest/devquest/internal/models"
)

// ContributionService is the subset of services.ContributionService the commands use.
type ContributionService interface {
	ScoreBatch(ctx context.Context, urls []string) ([]models.ScoredContribution, error)
	Validate(prURL string) bool
	Details(ctx context.Context, prURL string, live bool) (models.PRDetails, error)
}

// ServiceOptions carries the per-invocation flags that change how the service is built.
type ServiceOptions struct {
	NoCache bool
	WithAI  bool
}

// ServiceProvider returns a ContributionService on demand
type ServiceProvider func(ctx context.Context, opts ServiceOptions) (ContributionService, error)

func writers(cmd *cli.Command) (out io.Writer, errOut io.Writer) {
	root := cmd.Root()
	out, errOut = root.Writer, root.ErrWriter
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return out, errOut
}
