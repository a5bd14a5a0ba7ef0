package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/download"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/wizard"
)

// RunWizard drives an opened wizard through its steps with prompts and
// starts the download on confirmation. Quitting closes the wizard and
// returns ErrAborted.
func RunWizard(ctx context.Context, w *wizard.Wizard, p *Prompter, r *Renderer) (download.Receipt, error) {
	result := w.Result()
	switch result.State {
	case catalog.StateFailed:
		r.Failure(models.KindRelease, result.Reason)
		w.Close()
		return download.Receipt{}, errors.New(result.Reason)
	case catalog.StateLoaded:
	default:
		return download.Receipt{}, fmt.Errorf("catalog is %s", result.State)
	}

	versions := w.Versions()
	if len(versions) == 0 {
		r.Empty(models.KindRelease, catalog.HintNoData)
		w.Close()
		return download.Receipt{}, ErrAborted
	}

	quit := func(err error) (download.Receipt, error) {
		w.Close()
		if err != nil {
			return download.Receipt{}, err
		}
		return download.Receipt{}, ErrAborted
	}

	for {
		if err := ctx.Err(); err != nil {
			return quit(err)
		}

		sel := w.Selection()
		switch sel.Step {
		case wizard.StepVersion:
			options := make([]Option, len(versions))
			for i, v := range versions {
				options[i] = Option{Label: v}
				if v == sel.Version {
					options[i].Note = "(selected)"
				}
			}
			idx, answer, err := p.Choose("Choose a version", options, false)
			if err != nil || answer == AnswerQuit {
				return quit(err)
			}
			if err := w.SelectVersion(versions[idx]); err != nil {
				return quit(err)
			}

		case wizard.StepPlatform:
			platforms := w.PlatformOptions()
			options := make([]Option, len(platforms))
			for i, po := range platforms {
				options[i] = Option{Label: po.ID, Disabled: !po.Available}
				if !po.Available {
					options[i].Note = "(not available)"
				}
			}
			idx, answer, err := p.Choose(fmt.Sprintf("Choose a platform for %s", sel.Version), options, true)
			if err != nil || answer == AnswerQuit {
				return quit(err)
			}
			if answer == AnswerBack {
				if err := w.Back(); err != nil {
					return quit(err)
				}
				continue
			}
			if err := w.SelectPlatform(platforms[idx].ID); err != nil {
				if errors.Is(err, wizard.ErrPlatformUnavailable) {
					warnColor.Fprintln(r.Out, err.Error())
					continue
				}
				return quit(err)
			}

		case wizard.StepConfirm:
			descriptor, err := w.Resolve()
			if err != nil {
				if errors.Is(err, wizard.ErrSelectionMismatch) {
					warnColor.Fprintln(r.Out, "That combination is no longer available, choose another platform")
					continue
				}
				return quit(err)
			}
			r.Descriptor(descriptor)

			answer, err := p.Confirm("Download now?")
			if err != nil || answer == AnswerQuit {
				return quit(err)
			}
			if answer == AnswerBack {
				if err := w.Back(); err != nil {
					return quit(err)
				}
				continue
			}

			receipt, err := w.Download(ctx)
			if err != nil {
				return quit(err)
			}
			r.Receipt(receipt)
			return receipt, nil
		}
	}
}
