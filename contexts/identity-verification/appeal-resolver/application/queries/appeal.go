package queries

import (
	"context"
	"strings"

	"veridex/contexts/identity-verification/appeal-resolver/domain/entities"
	domainerrors "veridex/contexts/identity-verification/appeal-resolver/domain/errors"
	"veridex/contexts/identity-verification/appeal-resolver/ports"
)

type AppealQueries struct {
	Appeals ports.AppealRepository
}

func (q AppealQueries) GetAppeal(ctx context.Context, subjectID string) (entities.Appeal, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return entities.Appeal{}, domainerrors.ErrInvalidRequest
	}
	appeal, found, err := q.Appeals.GetAppeal(ctx, subjectID)
	if err != nil {
		return entities.Appeal{}, err
	}
	if !found {
		return entities.Appeal{}, domainerrors.ErrAppealNotFound
	}
	return appeal, nil
}
