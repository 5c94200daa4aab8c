package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/clock"
	"marketplace/internal/pkg/errs"
)

// SubmitReviewCommandHandler is the review gate. In one transaction it
//  1. reports the order as not found to anyone who is not a party to it
//  2. rejects a second review by the same author with errs.ErrAlreadyReviewed
//  3. rejects orders that are not delivered with errs.ErrOrderNotDeliverable
//  4. stores the review and, for buyer_to_seller reviews, locks the seller's
//     rating and recomputes it over all their reviews
//  5. sets the author's review flag on the order
//
// The unique index on (order_id, from_user_id) is what really prevents
// duplicates; the existence check only avoids a doomed insert.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	clock      clock.Clock
	aggregator services.RatingAggregator
}

func NewSubmitReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	clk clock.Clock,
	aggregator services.RatingAggregator,
) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		aggregator: aggregator,
	}
}

func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.IsParty(cmd.FromUserID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	reviewRepo := uow.ReviewRepository()
	exists, err := reviewRepo.Exists(ctx, cmd.OrderID(), cmd.FromUserID())
	if err != nil {
		return err
	}
	if exists {
		return errs.ErrAlreadyReviewed
	}

	if o.Status() != order.Delivered {
		return errs.ErrOrderNotDeliverable
	}

	ratee, err := o.Counterparty(cmd.FromUserID())
	if err != nil {
		return err
	}
	role := review.RoleSellerToBuyer
	if o.IsBuyer(cmd.FromUserID()) {
		role = review.RoleBuyerToSeller
	}

	r, err := review.NewReview(
		cmd.ReviewID(),
		o.ID(),
		o.Product().ID(),
		cmd.FromUserID(),
		ratee,
		role,
		cmd.Rating(),
		cmd.Comment(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return err
	}

	if role.CountsTowardsRating() {
		ratingRepo := uow.RatingRepository()
		if err = ratingRepo.Lock(ctx, ratee); err != nil {
			return err
		}
		ratings, listErr := reviewRepo.ListRatings(ctx, ratee, role)
		if listErr != nil {
			return listErr
		}
		if err = ratingRepo.Save(ctx, h.aggregator.Aggregate(ratee, ratings)); err != nil {
			return err
		}
	}

	if err = o.MarkReviewedBy(cmd.FromUserID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
