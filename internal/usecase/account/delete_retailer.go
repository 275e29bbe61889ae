package account

import (
	"context"

	domain "github.com/pharmanet/medsupply-api/internal/domain/account"
	"github.com/pharmanet/medsupply-api/internal/httperr"
)

type DeleteRetailer struct {
	repo domain.Repository
}

func NewDeleteRetailer(repo domain.Repository) *DeleteRetailer {
	return &DeleteRetailer{repo: repo}
}

// Execute removes the retailer profile and its paired login account as
// one unit.
func (uc *DeleteRetailer) Execute(ctx context.Context, id uint) error {

	retailer, err := uc.repo.GetRetailerByID(ctx, id)
	if err != nil {
		return httperr.ErrBusinessMsg(
			"retailer_not_found",
			"retailer not found",
		)
	}

	return uc.repo.DeleteRetailerWithUser(ctx, retailer.ID, retailer.UserID)
}
